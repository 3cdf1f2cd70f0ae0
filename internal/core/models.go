package core

import (
	"time"
)

type ProbeOutcome string

const (
	OutcomeLive  ProbeOutcome = "live"
	OutcomeDead  ProbeOutcome = "dead"
	OutcomeError ProbeOutcome = "error"
)

// TagValues maps a marker tag to the raw values the user supplied for it.
// Value order is preserved; duplicates are kept as given.
type TagValues map[string][]string

// ProbeConfig bounds the two attempt methods of a single probe.
type ProbeConfig struct {
	HeadTimeout time.Duration
	GetTimeout  time.Duration
}

func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{
		HeadTimeout: HeadProbeTimeoutSeconds * time.Second,
		GetTimeout:  GetProbeTimeoutSeconds * time.Second,
	}
}

// SearchConfig holds the coordinator knobs. Tests inject small values
// (2 workers, batch size 3) without touching the production defaults.
type SearchConfig struct {
	Workers   int
	BatchSize int
	Pace      time.Duration
}

func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Workers:   DefaultWorkers,
		BatchSize: DefaultBatchSize,
		Pace:      DefaultPace,
	}
}

// SearchReport is the outcome of one Search invocation. Dead and Errors are
// kept apart for observability even though the search treats them the same.
// On an early-terminated search the tallies cover only the batches workers
// completed, and probes cut off mid-flight by cancellation land in Errors.
type SearchReport struct {
	Total     int       `json:"total"`
	Checked   int       `json:"checked"`
	Dead      int       `json:"dead"`
	Errors    int       `json:"errors"`
	Found     bool      `json:"found"`
	FoundURL  string    `json:"found_url,omitempty"`
	Elapsed   float64   `json:"elapsed"`
	StartedAt time.Time `json:"started_at"`
}
