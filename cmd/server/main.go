package main

import (
	"iss-pass-service/internal/api"
	"iss-pass-service/internal/app"
	"iss-pass-service/internal/config"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the lookup adapters behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("ISSPASS_CONFIG", "config.toml"))
	if err != nil {
		log.Fatal(err)
	}

	components, err := app.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(components.Lookup)

	// A full run is three sequential upstream calls, each bounded by HTTPTimeout.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      3*cfg.HTTPTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
