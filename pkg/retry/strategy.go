package retry

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/starforge-games/starforge-sdk/pkg/retry/backoff"
)

// Strategy decides whether an action should be attempted again after an
// error. Strategies may delay or cause other side effects.
type Strategy func(attempts uint, err error) bool

// Limit returns a strategy that caps the total number of attempts.
// maxAttempts should be >= 1, since the action always runs once before
// any strategy is consulted.
func Limit(maxAttempts uint) Strategy {
	return func(attempts uint, err error) bool {
		return attempts < maxAttempts
	}
}

// RetriableErrors returns a strategy that only permits a retry when the
// error matches one of the provided errors. Wrapped errors are detected.
func RetriableErrors(retriableErrors ...error) Strategy {
	return func(attempts uint, err error) bool {
		for _, e := range retriableErrors {
			if errors.Is(err, e) {
				return true
			}
		}

		return false
	}
}

// Backoff returns a strategy that sleeps before the next attempt, using the
// provided backoff strategy capped at maxBackoff.
func Backoff(strategy backoff.Strategy, maxBackoff time.Duration) Strategy {
	return func(attempts uint, err error) bool {
		delay := strategy(attempts)
		cappedDelay := time.Duration(math.Min(float64(maxBackoff), float64(delay)))
		activeSleeper.Sleep(cappedDelay)
		return true
	}
}

// BackoffWithJitter behaves like Backoff, with a jitter applied to the
// capped delay.
//
// The jitter parameter is the fraction of the capped delay that the sleep
// may deviate by. For example, a capped delay of 100ms with a jitter of 0.1
// sleeps for 100ms +/- 10ms.
func BackoffWithJitter(strategy backoff.Strategy, maxBackoff time.Duration, jitter float64) Strategy {
	return func(attempts uint, err error) bool {
		delay := strategy(attempts)
		cappedDelay := time.Duration(math.Min(float64(maxBackoff), float64(delay)))

		// Center the jitter around the capped delay:
		//     <------cappedDelay------>
		//      jitter           jitter
		cappedDelayWithJitter := time.Duration(float64(cappedDelay) * (1 + (rand.Float64()*jitter*2 - jitter)))
		activeSleeper.Sleep(cappedDelayWithJitter)
		return true
	}
}

type sleeper interface {
	Sleep(time.Duration)
}

// realSleeper uses the time package to perform actual sleeps
type realSleeper struct{}

func (r *realSleeper) Sleep(d time.Duration) { time.Sleep(d) }

var activeSleeper sleeper = &realSleeper{}
