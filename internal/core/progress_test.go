package core

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name    string
		checked int
		total   int
		want    string
	}{
		{"empty", 0, 10, "Progress: [░░░░░░░░░░░░░░░] 0% (0/10)"},
		{"half", 5, 10, "Progress: [███████░░░░░░░░] 50% (5/10)"},
		{"full", 10, 10, "Progress: [███████████████] 100% (10/10)"},
		{"zero total", 0, 0, "Progress: [░░░░░░░░░░░░░░░] 0% (0/0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderBar(tt.checked, tt.total))
		})
	}
}

func TestRenderBarWidthIsFixed(t *testing.T) {
	for checked := 0; checked <= 20; checked++ {
		bar := RenderBar(checked, 20)
		slots := strings.Count(bar, "█") + strings.Count(bar, "░")
		assert.Equal(t, ProgressBarSlots, slots, "checked=%d", checked)
	}
}

type recordingSink struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (s *recordingSink) Update(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
	return s.err
}

func TestBarReporterDeliversToSink(t *testing.T) {
	sink := &recordingSink{}
	r := NewBarReporter(sink)

	r.Report(5, 10)
	r.ReportFound("https://host/a.jpg")

	require.Len(t, sink.texts, 2)
	assert.Equal(t, RenderBar(5, 10), sink.texts[0])
	assert.Equal(t, "Found: https://host/a.jpg", sink.texts[1])
}

func TestBarReporterSwallowsSinkFailures(t *testing.T) {
	sink := &recordingSink{err: errors.New("transport down")}
	r := NewBarReporter(sink)

	assert.NotPanics(t, func() {
		r.Report(1, 2)
		r.ReportFound("https://host/a.jpg")
	})
}

func TestBarReporterToleratesNilSinkAndConcurrency(t *testing.T) {
	assert.NotPanics(t, func() {
		var nilReporter *BarReporter
		nilReporter.Report(1, 2)
		NewBarReporter(nil).Report(1, 2)
	})

	sink := &recordingSink{}
	r := NewBarReporter(sink)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Report(i, 8)
		}(i)
	}
	wg.Wait()
	assert.Len(t, sink.texts, 8)
}
