package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Searcher coordinates a fixed pool of workers over a candidate set and
// stops on the first live URL.
type Searcher struct {
	prober *Prober
	cfg    SearchConfig
}

func NewSearcher(prober *Prober, cfg SearchConfig) *Searcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	return &Searcher{
		prober: prober,
		cfg:    cfg,
	}
}

// Partition splits candidates round-robin so URLs sharing positional
// structure spread across workers: worker i gets indices i, i+w, i+2w, …
func Partition(candidates []string, workers int) [][]string {
	parts := make([][]string, workers)
	for i, c := range candidates {
		parts[i%workers] = append(parts[i%workers], c)
	}
	return parts
}

type searchState struct {
	total   int
	checked atomic.Int64
	dead    atomic.Int64
	errors  atomic.Int64

	once     sync.Once
	foundURL string
	cancel   context.CancelFunc
}

// setFound is first-writer-wins: only one worker ever records the result,
// and winning raises the cancellation signal for its siblings.
func (st *searchState) setFound(url string) bool {
	won := false
	st.once.Do(func() {
		st.foundURL = url
		won = true
		st.cancel()
	})
	return won
}

// Search probes candidates until one answers 200 or the set is exhausted.
// It does not return before every spawned worker has terminated, on every
// exit path. An empty candidate list is an immediate exhausted result.
func (s *Searcher) Search(ctx context.Context, candidates []string, reporter ProgressReporter) *SearchReport {
	report := &SearchReport{
		Total:     len(candidates),
		StartedAt: time.Now(),
	}
	if len(candidates) == 0 {
		return report
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	state := &searchState{
		total:  len(candidates),
		cancel: cancel,
	}

	var g errgroup.Group
	for _, part := range Partition(candidates, s.cfg.Workers) {
		if len(part) == 0 {
			continue
		}
		part := part
		g.Go(func() error {
			s.runWorker(runCtx, part, state, reporter)
			return nil
		})
	}
	g.Wait()

	report.Checked = int(state.checked.Load())
	report.Dead = int(state.dead.Load())
	report.Errors = int(state.errors.Load())
	report.FoundURL = state.foundURL
	report.Found = state.foundURL != ""
	report.Elapsed = time.Since(report.StartedAt).Seconds()
	return report
}

// runWorker walks its partition in fixed-size batches, fanning every batch
// out concurrently. The pace limiter spaces batch starts so request volume
// stays bounded; its Wait doubles as the batch-boundary cancellation check.
func (s *Searcher) runWorker(ctx context.Context, part []string, state *searchState, reporter ProgressReporter) {
	limiter := rate.NewLimiter(rate.Every(s.cfg.Pace), 1)

	for start := 0; start < len(part); start += s.cfg.BatchSize {
		if err := limiter.Wait(ctx); err != nil {
			return
		}

		end := start + s.cfg.BatchSize
		if end > len(part) {
			end = len(part)
		}
		batch := part[start:end]

		outcomes := make([]ProbeOutcome, len(batch))
		var wg sync.WaitGroup
		for i, u := range batch {
			wg.Add(1)
			go func(i int, u string) {
				defer wg.Done()
				outcomes[i] = s.prober.Probe(ctx, u)
			}(i, u)
		}
		wg.Wait()

		checked := state.checked.Add(int64(len(batch)))
		if reporter != nil {
			reporter.Report(int(checked), state.total)
		}

		// Scan in original index order so the first live URL of the
		// batch wins, not whichever probe finished first. The whole
		// batch is tallied either way so the report's counters cover
		// every probe this worker completed.
		foundIdx := -1
		for i, outcome := range outcomes {
			switch outcome {
			case OutcomeLive:
				if foundIdx < 0 {
					foundIdx = i
				}
			case OutcomeDead:
				state.dead.Add(1)
			case OutcomeError:
				state.errors.Add(1)
			}
		}
		if foundIdx >= 0 {
			if state.setFound(batch[foundIdx]) && reporter != nil {
				reporter.ReportFound(batch[foundIdx])
			}
			return
		}
	}
}
