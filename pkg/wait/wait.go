// Package wait provides a blocking poll helper for scenarios that need
// to observe asynchronous backend effects, such as notification fan-out
// after an order changes state.
package wait

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// For polls cond every interval until it reports true, the timeout
// elapses, or ctx is cancelled. A cond error aborts the poll
// immediately; a timeout returns an error naming the awaited condition.
func For(ctx context.Context, timeout, interval time.Duration, description string, cond func(ctx context.Context) (bool, error)) error {
	zap.S().Infof("waiting up to %s for %s", timeout, description)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ok, err := cond(ctx)
		if err != nil {
			return err
		}
		if ok {
			zap.S().Infof("condition met: %s", description)
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out after %s waiting for %s", timeout, description)
		case <-ticker.C:
		}
	}
}
