package scrapedeck

import (
	"context"
	"errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/scrapedeck/scrapedeck-go/internal/types"
)

// errRunPending signals the backoff loop to keep polling.
var errRunPending = errors.New("run still in progress")

// AwaitOption tunes AwaitRun's polling cadence.
type AwaitOption func(*awaitConfig)

type awaitConfig struct {
	initialInterval time.Duration
	maxInterval     time.Duration
}

// WithPollInterval sets the initial and maximum delay between GetRun
// polls. Defaults are 1s and 30s.
func WithPollInterval(initial, max time.Duration) AwaitOption {
	return func(cfg *awaitConfig) {
		if initial > 0 {
			cfg.initialInterval = initial
		}
		if max > 0 {
			cfg.maxInterval = max
		}
	}
}

// AwaitRun polls GetRun with exponential backoff until the run reaches
// a terminal status (complete, cancelled or error) or ctx is done.
// Endpoint errors are not retried; they abort the wait immediately.
func (c *Client) AwaitRun(ctx context.Context, runToken string, opts ...AwaitOption) (*Run, error) {
	cfg := awaitConfig{initialInterval: time.Second, maxInterval: 30 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = cfg.initialInterval
	exp.MaxInterval = cfg.maxInterval
	exp.MaxElapsedTime = 0 // bounded by ctx alone

	var run *Run
	poll := func() error {
		env, err := c.GetRun(ctx, runToken, GetRunRequest{DecodeJSON: true})
		if err != nil {
			return backoff.Permanent(err)
		}
		r := types.RunFromEnvelope(env)
		if r == nil || !r.Status.Terminal() {
			log.Debug().Str("run_token", runToken).Msg("run not terminal yet")
			return errRunPending
		}
		run = r
		return nil
	}
	if err := backoff.Retry(poll, backoff.WithContext(exp, ctx)); err != nil {
		return nil, err
	}
	return run, nil
}
