/*
 * Copyright 2026 the tp-api authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cache provides the scoped TTL memoization store shared by all
// park adapters. Every network-facing step of the credential pipeline
// runs through Wrap, which guarantees that concurrent callers racing on
// one key converge on a single in-flight producer call and that a
// failed producer never populates the store.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viccon/sturdyc"
)

const (
	// formatVersion is baked into every key so that incompatible
	// record-shape changes invalidate old entries instead of decoding
	// them wrong.
	formatVersion = 1

	defaultCapacity    = 1000
	defaultNumShards   = 64
	defaultEvictionPct = 10
)

// Store is a process-wide cache partitioned into named scopes. Each
// scope carries its own TTL, fixed when the scope is first used; the
// per-key deduplication of in-flight producers comes from sturdyc.
type Store struct {
	instance string

	mu     sync.Mutex
	scopes map[string]*sturdyc.Client[any]
}

// NewStore creates a store namespaced by the adapter instance name.
// Two adapters with different instance names never share entries.
func NewStore(instance string) *Store {
	return &Store{
		instance: instance,
		scopes:   make(map[string]*sturdyc.Client[any]),
	}
}

func (s *Store) scope(name string, ttl time.Duration) *sturdyc.Client[any] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.scopes[name]; ok {
		return c
	}

	c := sturdyc.New[any](defaultCapacity, defaultNumShards, ttl, defaultEvictionPct)
	s.scopes[name] = c

	return c
}

func (s *Store) key(scope, key string) string {
	return fmt.Sprintf("%s/v%d/%s/%s", s.instance, formatVersion, scope, key)
}

// Delete drops the entry stored under (scope, key), forcing the next
// Wrap call to invoke its producer again.
func (s *Store) Delete(scope, key string) {
	s.mu.Lock()
	c, ok := s.scopes[scope]
	s.mu.Unlock()

	if !ok {
		return
	}

	c.Delete(s.key(scope, key))
}

// wrap memoizes producer under (scope, key) for the scope's TTL. On a
// hit the stored value is returned and producer is not invoked; on a
// miss producer runs exactly once, concurrent callers for the same key
// share that single call, and an error leaves the key unpopulated.
func (s *Store) wrap(ctx context.Context, scope, key string, ttl time.Duration,
	producer func(ctx context.Context) (any, error)) (any, error) {
	c := s.scope(scope, ttl)

	return c.GetOrFetch(ctx, s.key(scope, key), producer)
}

// Wrap is the typed front of Store.wrap. The TTL is bound to the scope:
// the first Wrap call for a scope fixes it, later calls reuse it.
func Wrap[T any](ctx context.Context, s *Store, scope, key string, ttl time.Duration,
	producer func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.wrap(ctx, scope, key, ttl, func(ctx context.Context) (any, error) {
		return producer(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}
