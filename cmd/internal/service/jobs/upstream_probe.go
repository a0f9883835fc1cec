package jobs

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
)

const ProbeInterval = 1 * time.Minute

// UpstreamProbe periodically checks that the proposals API answers at all.
// Any HTTP response counts as up, only transport failures count as down.
type UpstreamProbe struct {
	url        string
	httpClient *http.Client
	up         prometheus.Gauge
	interval   time.Duration
}

func NewUpstreamProbe(url string, timeout time.Duration, up prometheus.Gauge) *UpstreamProbe {
	return &UpstreamProbe{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		up:         up,
		interval:   ProbeInterval,
	}
}

func (p *UpstreamProbe) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info("Upstream probe started")
	p.probe(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping upstream probe...")
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *UpstreamProbe) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		log.Errorf("Probe: invalid upstream url %s: %v", p.url, err)
		p.up.Set(0)
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Warnf("Probe: proposals api unreachable: %v", err)
		p.up.Set(0)
		return false
	}
	_ = resp.Body.Close()

	log.Debugf("Probe: proposals api answered with %d", resp.StatusCode)
	p.up.Set(1)
	return true
}
