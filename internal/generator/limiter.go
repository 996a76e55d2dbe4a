package generator

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/vytor/lecturedeck/internal/logger"
)

// Limited bounds the number of in-flight provider calls and their rate.
type Limited struct {
	next    Generator
	sem     *semaphore.Weighted
	limiter *rate.Limiter
}

var _ Generator = (*Limited)(nil)

func NewLimited(next Generator, maxConcurrent int, ratePerSec float64) *Limited {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	burst := int(ratePerSec)
	if burst < 1 {
		burst = 1
	}
	return &Limited{
		next:    next,
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
	}
}

func (l *Limited) Generate(ctx context.Context, req Request) (*Batch, error) {
	log := logger.FromContext(ctx).WithPrefix("generator_limiter")
	start := time.Now()

	if err := l.sem.Acquire(ctx, 1); err != nil {
		log.Warn("gave up waiting for a provider slot: %v", err)
		return nil, newError(ProviderRejected, err)
	}
	defer l.sem.Release(1)

	if err := l.limiter.Wait(ctx); err != nil {
		log.Warn("gave up waiting for provider rate limit: %v", err)
		return nil, newError(ProviderRejected, err)
	}

	if waited := time.Since(start); waited > 100*time.Millisecond {
		log.Debug("waited %v for provider capacity", waited)
	}
	return l.next.Generate(ctx, req)
}
