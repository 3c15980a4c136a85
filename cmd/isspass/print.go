package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iss-pass-service/internal/domain"
	"time"
)

const passTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

func printPasses(w io.Writer, schedule domain.PassSchedule, asJSON bool) error {
	if asJSON {
		return writeJSON(w, schedule)
	}

	if len(schedule) == 0 {
		_, err := fmt.Fprintln(w, "No upcoming passes.")
		return err
	}

	for _, p := range schedule {
		if _, err := fmt.Fprintln(w, formatPass(p, time.Local)); err != nil {
			return err
		}
	}
	return nil
}

func formatPass(p domain.PassWindow, loc *time.Location) string {
	return fmt.Sprintf("Next pass at %s for %d seconds!", p.RiseAt().In(loc).Format(passTimeLayout), p.Duration)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
