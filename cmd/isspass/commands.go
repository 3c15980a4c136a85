package main

import (
	"fmt"
	"io"
	"iss-pass-service/internal/app"
	"iss-pass-service/internal/config"
	"iss-pass-service/internal/domain"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	timeout    time.Duration
	asJSON     bool
}

func (o *options) build() (*app.Components, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.timeout > 0 {
		cfg.HTTPTimeout = o.timeout
	}
	return app.Build(cfg)
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "isspass",
		Short:         "Upcoming ISS passes over your current location",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNext(cmd, opts, out)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.Get("ISSPASS_CONFIG", "config.toml"), "path to an optional TOML config file")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "per-request HTTP timeout (overrides config)")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")

	next := &cobra.Command{
		Use:   "next",
		Short: "Look up your IP, its coordinates, then the next passes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNext(cmd, opts, out)
		},
	}

	ip := &cobra.Command{
		Use:   "ip",
		Short: "Print your public IP address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.build()
			if err != nil {
				return err
			}
			addr, err := c.IP.ResolveIP(cmd.Context())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(out, map[string]string{"ip": addr.String()})
			}
			_, err = fmt.Fprintln(out, addr)
			return err
		},
	}

	coords := &cobra.Command{
		Use:   "coords [ip]",
		Short: "Print coordinates for an IP address (default: your public IP)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.build()
			if err != nil {
				return err
			}

			var addr domain.IPAddress
			if len(args) == 1 {
				addr = domain.IPAddress(args[0])
			} else if addr, err = c.IP.ResolveIP(cmd.Context()); err != nil {
				return err
			}

			loc, err := c.Geo.ResolveCoordinates(cmd.Context(), addr)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(out, loc)
			}
			_, err = fmt.Fprintf(out, "latitude=%g longitude=%g\n", loc.Lat, loc.Lon)
			return err
		},
	}

	passes := &cobra.Command{
		Use:   "passes <lat> <lon>",
		Short: "Print upcoming passes for the given coordinates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseCoordinates(args[0], args[1])
			if err != nil {
				return err
			}
			c, err := opts.build()
			if err != nil {
				return err
			}
			schedule, err := c.Passes.ResolvePasses(cmd.Context(), loc)
			if err != nil {
				return err
			}
			return printPasses(out, schedule, opts.asJSON)
		},
	}

	root.AddCommand(next, ip, coords, passes)
	return root
}

func runNext(cmd *cobra.Command, opts *options, out io.Writer) error {
	c, err := opts.build()
	if err != nil {
		return err
	}

	schedule, err := c.Lookup.NextPassesForCurrentLocation(cmd.Context())
	if err != nil {
		return err
	}

	return printPasses(out, schedule, opts.asJSON)
}

func parseCoordinates(rawLat, rawLon string) (domain.Coordinates, error) {
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse latitude %q: %w", rawLat, err)
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse longitude %q: %w", rawLon, err)
	}

	c := domain.Coordinates{Lat: lat, Lon: lon}
	if !c.Valid() {
		return domain.Coordinates{}, domain.ErrInvalidCoordinates
	}
	return c, nil
}
