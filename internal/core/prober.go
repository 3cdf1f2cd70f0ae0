package core

import (
	"context"
	"io"
	"net/http"

	"github.com/gnomegl/urlsx/internal/client"
)

// Prober performs a single existence check against one URL. A cheap HEAD
// goes out first; anything other than a clean 200 falls back to a full GET.
// Transport failures never escape the probe: the search only cares about the
// first success, so an unreachable URL is as good as a missing one.
type Prober struct {
	client *client.HTTPClient
	cfg    ProbeConfig
}

func NewProber(httpClient *client.HTTPClient, cfg ProbeConfig) *Prober {
	return &Prober{
		client: httpClient,
		cfg:    cfg,
	}
}

func (p *Prober) Probe(ctx context.Context, url string) ProbeOutcome {
	headCtx, cancelHead := context.WithTimeout(ctx, p.cfg.HeadTimeout)
	resp, err := p.client.Head(headCtx, url)
	if err == nil {
		live := resp.StatusCode == http.StatusOK
		resp.Body.Close()
		cancelHead()
		if live {
			return OutcomeLive
		}
	} else {
		cancelHead()
	}

	getCtx, cancelGet := context.WithTimeout(ctx, p.cfg.GetTimeout)
	defer cancelGet()
	resp, err = p.client.Get(getCtx, url, nil)
	if err != nil {
		return OutcomeError
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		return OutcomeLive
	}
	return OutcomeDead
}
