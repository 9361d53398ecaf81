// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of concurrently running CPU-heavy tasks such as
// PBKDF2 derivations and RSA key generation.
type Pool struct {
	name string
	sem  *semaphore.Weighted
}

// NewPool returns a pool admitting at most size concurrent tasks. Sizes
// below one are raised to one.
func NewPool(name string, size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{name: name, sem: semaphore.NewWeighted(int64(size))}
}

// Do runs fn once a slot is free. If ctx ends first, fn is not run and the
// context error is returned.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%s pool: %w", p.name, err)
	}
	defer p.sem.Release(1)

	return fn()
}
