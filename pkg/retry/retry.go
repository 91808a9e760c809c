package retry

import (
	"time"
)

type fn func() error

type shouldRetry func(err error, attempt int) bool

// WrapWithRetry wraps f, retrying it while shouldRetry allows. Retrying
// stops when the error rate climbs above rate errors per second, measured
// over a sliding window of the most recent failures.
func WrapWithRetry(f fn, shouldRetry shouldRetry, rate float32) func() error {
	size := int(rate + 1)
	var errorTimestamps []time.Time

	return func() error {
		attempt := 0

		for {
			err := f()
			if err == nil {
				return nil
			}

			attempt++

			errorTimestamps = append(errorTimestamps, time.Now())
			if len(errorTimestamps) > size {
				errorTimestamps = errorTimestamps[1:]
			}

			if !shouldRetry(err, attempt) {
				return err
			}

			if len(errorTimestamps) == size {
				window := errorTimestamps[len(errorTimestamps)-1].Sub(errorTimestamps[0])
				if window <= time.Second {
					// size failures within a second: failing hard, give up.
					return err
				}
			}
		}
	}
}
