// Package webhook delivers newly created intake records to externally
// configured URLs. Delivery is at-most-once and best-effort: the HTTP
// response that triggered it never waits on the outcome, and every failure
// mode ends in a log line, not an error to the caller.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/blkboxlogictc/AtlanteRealty/internal/api/metrics"
)

const (
	defaultWorkers = 2
	defaultTimeout = 5 * time.Second
	queueCapacity  = 64
)

type job struct {
	target string
	url    string
	body   []byte
}

// Forwarder fans webhook jobs out to a fixed set of workers reading one
// buffered channel. Workers stop when the context passed to Start is
// cancelled; in-flight deliveries are abandoned silently.
type Forwarder struct {
	client  *http.Client
	jobs    chan job
	workers int
	log     zerolog.Logger
}

// NewForwarder creates a Forwarder whose deliveries are bounded by timeout.
// Non-positive workers or timeout fall back to the defaults.
func NewForwarder(timeout time.Duration, workers int, log zerolog.Logger) *Forwarder {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Forwarder{
		client:  &http.Client{Timeout: timeout},
		jobs:    make(chan job, queueCapacity),
		workers: workers,
		log:     log,
	}
}

// Start launches the worker goroutines.
func (f *Forwarder) Start(ctx context.Context) {
	for i := 0; i < f.workers; i++ {
		go f.runWorker(ctx, i)
	}
}

// Enqueue hands a payload to the workers without blocking. An empty url is
// a no-op (forwarding not configured); a full queue drops the job.
func (f *Forwarder) Enqueue(target, url string, payload any) {
	if url == "" {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		f.log.Error().Err(err).Str("target", target).Msg("webhook payload not serializable")
		return
	}

	select {
	case f.jobs <- job{target: target, url: url, body: body}:
	default:
		f.log.Warn().Str("target", target).Msg("webhook queue full, dropping delivery")
		metrics.WebhookDeliveriesTotal.WithLabelValues(target, "dropped").Inc()
	}
}

func (f *Forwarder) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-f.jobs:
			f.deliver(ctx, id, j)
		}
	}
}

func (f *Forwarder) deliver(ctx context.Context, workerID int, j job) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.url, bytes.NewReader(j.body))
	if err != nil {
		f.log.Error().Err(err).Str("target", j.target).Msg("webhook request build failed")
		metrics.WebhookDeliveriesTotal.WithLabelValues(j.target, "error").Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Error().Err(err).Str("target", j.target).Int("worker_id", workerID).Msg("webhook delivery failed")
		metrics.WebhookDeliveriesTotal.WithLabelValues(j.target, "error").Inc()
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		f.log.Error().Int("status", resp.StatusCode).Str("target", j.target).Msg("webhook rejected by receiver")
		metrics.WebhookDeliveriesTotal.WithLabelValues(j.target, "rejected").Inc()
		return
	}

	metrics.WebhookDeliveriesTotal.WithLabelValues(j.target, "delivered").Inc()
	f.log.Debug().Str("target", j.target).Msg("webhook delivered")
}
