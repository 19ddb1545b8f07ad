package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// NodeRunning is a ready predicate for AwaitNode that accepts nodes whose
// status reports them as running.
func NodeRunning(n *Node) bool {
	return n != nil && (n.Status == "running" || n.Status == "RUNNING")
}

// AwaitNode polls GetNode until ready returns true for the node named name.
// A 404 is treated as "not yet created" and polling continues; any other
// error stops the wait. The wait is bounded only by ctx.
//
// A nil ready accepts the first node the server returns.
func (c *Client) AwaitNode(ctx context.Context, name string, ready func(*Node) bool) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("node name is required")
	}
	if ready == nil {
		ready = func(*Node) bool { return true }
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.pollInterval
	exp.Multiplier = 2
	exp.MaxInterval = c.maxPoll
	exp.MaxElapsedTime = 0 // ctx decides
	exp.Reset()

	var got *Node
	op := func() error {
		n, err := c.GetNode(ctx, name)
		switch {
		case errors.Is(err, ErrNotFound):
			awaitPollsTotal.WithLabelValues("not_found").Inc()
			return err
		case err != nil:
			awaitPollsTotal.WithLabelValues("error").Inc()
			return backoff.Permanent(err)
		case !ready(n):
			awaitPollsTotal.WithLabelValues("pending").Inc()
			return fmt.Errorf("node %s not ready (status %q)", name, n.Status)
		}
		awaitPollsTotal.WithLabelValues("ready").Inc()
		got = n
		return nil
	}

	notify := func(err error, wait time.Duration) {
		l := c.callLogger()
		l.Debug().Err(err).Str("node", name).Dur("retry_in", wait).Msg("awaiting node")
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(exp, ctx), notify); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("await node %s: %w", name, ctxErr)
		}
		return nil, err
	}
	return got, nil
}
