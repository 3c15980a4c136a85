package domain

import "time"

// Represents a single predicted overhead pass.
// RiseTime is in epoch seconds and Duration in seconds, exactly as
// reported by the pass prediction service.
type PassWindow struct {
	RiseTime int64 `json:"risetime"`
	Duration int64 `json:"duration"`
}

// Return the rise time as a time.Time.
func (p PassWindow) RiseAt() time.Time { return time.Unix(p.RiseTime, 0) }

// Return how long the pass lasts.
func (p PassWindow) Length() time.Duration { return time.Duration(p.Duration) * time.Second }

// Ordered sequence of upcoming passes, in the order the upstream service
// returned them. An empty schedule is a valid result.
type PassSchedule []PassWindow
