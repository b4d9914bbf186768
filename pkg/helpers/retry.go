package helpers

import (
	"math/rand"
	"time"
)

// Retry calls fn until it succeeds, returns an error retryable rejects, or
// has been retried times times.
func Retry(times int, interval time.Duration, retryable func(error) bool, fn func() error) error {
	i := 0

	for {
		err := fn()
		if err == nil {
			return nil
		}

		if retryable != nil && !retryable(err) {
			return err
		}

		i++

		if i > times {
			return err
		}

		// add up to 20% jitter
		time.Sleep(interval + time.Duration(rand.Int63n(int64(interval/5)+1)))
	}
}
