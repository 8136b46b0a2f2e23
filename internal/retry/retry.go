// Package retry содержит утилиты повторных попыток.
package retry

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Backoff рассчитывает экспоненциальные задержки с опциональным джиттером.
type Backoff struct {
	Base   time.Duration
	Cap    time.Duration
	Jitter bool

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewBackoff создает Backoff с собственным генератором случайных чисел.
func NewBackoff(base time.Duration, capDur time.Duration, jitter bool) *Backoff {
	if capDur > 0 && base > capDur {
		base = capDur
	}
	return &Backoff{
		Base:   base,
		Cap:    capDur,
		Jitter: jitter,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WaitDuration возвращает задержку для попытки повтора (0-базовая).
func (b *Backoff) WaitDuration(attempt int) time.Duration {
	if b == nil || b.Base <= 0 || attempt < 0 {
		return 0
	}

	maxInt := time.Duration(math.MaxInt64)
	wait := b.Base
	for i := 0; i < attempt; i++ {
		if wait > maxInt/2 {
			wait = maxInt
			break
		}
		wait *= 2
		if b.Cap > 0 && wait >= b.Cap {
			wait = b.Cap
			break
		}
	}

	if b.Cap > 0 && wait > b.Cap {
		wait = b.Cap
	}
	if !b.Jitter || wait <= 0 {
		return wait
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return wait/2 + time.Duration(b.rnd.Int63n(int64(wait/2)+1))
}

// Wait блокируется на задержку попытки или до отмены контекста.
func (b *Backoff) Wait(ctx context.Context, attempt int) error {
	wait := b.WaitDuration(attempt)
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
