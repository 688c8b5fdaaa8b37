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

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProducerFailed = errors.New("producer failed")

func TestWrap_HitDoesNotInvokeProducer(t *testing.T) {
	store := NewStore("test")

	var calls int32

	producer := func(_ context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}

	v, err := Wrap(context.Background(), store, "scope", "key", time.Minute, producer)
	require.NoError(t, err)
	require.Equal(t, "value", v)

	v, err = Wrap(context.Background(), store, "scope", "key", time.Minute, producer)
	require.NoError(t, err)
	require.Equal(t, "value", v)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWrap_ExpiryInvokesProducerAgain(t *testing.T) {
	store := NewStore("test")

	var calls int32

	producer := func(_ context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	ttl := 50 * time.Millisecond

	v, err := Wrap(context.Background(), store, "scope", "key", ttl, producer)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	time.Sleep(ttl + 20*time.Millisecond)

	v, err = Wrap(context.Background(), store, "scope", "key", ttl, producer)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestWrap_ConcurrentCallersShareOneProducer(t *testing.T) {
	store := NewStore("test")

	var calls int32

	producer := func(_ context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)

		return "shared", nil
	}

	const callers = 10

	var wg sync.WaitGroup

	results := make([]string, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Wrap(context.Background(), store, "scope", "key", time.Minute, producer)
		}(i)
	}

	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, "shared", results[i])
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWrap_FailedProducerDoesNotPopulate(t *testing.T) {
	store := NewStore("test")

	var calls int32

	producer := func(_ context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", errProducerFailed
		}

		return "recovered", nil
	}

	_, err := Wrap(context.Background(), store, "scope", "key", time.Minute, producer)
	require.ErrorIs(t, err, errProducerFailed)

	v, err := Wrap(context.Background(), store, "scope", "key", time.Minute, producer)
	require.NoError(t, err)
	require.Equal(t, "recovered", v)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestWrap_ScopesAreIndependent(t *testing.T) {
	store := NewStore("test")

	a, err := Wrap(context.Background(), store, "a", "key", time.Minute,
		func(_ context.Context) (string, error) { return "from-a", nil })
	require.NoError(t, err)

	b, err := Wrap(context.Background(), store, "b", "key", time.Minute,
		func(_ context.Context) (string, error) { return "from-b", nil })
	require.NoError(t, err)

	assert.Equal(t, "from-a", a)
	assert.Equal(t, "from-b", b)
}

func TestStore_InstanceNamespacesKeys(t *testing.T) {
	one := NewStore("one")
	two := NewStore("two")

	v1, err := Wrap(context.Background(), one, "scope", "key", time.Minute,
		func(_ context.Context) (string, error) { return "one", nil })
	require.NoError(t, err)

	v2, err := Wrap(context.Background(), two, "scope", "key", time.Minute,
		func(_ context.Context) (string, error) { return "two", nil })
	require.NoError(t, err)

	assert.Equal(t, "one", v1)
	assert.Equal(t, "two", v2)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore("test")

	var calls int32

	producer := func(_ context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}

	_, err := Wrap(context.Background(), store, "scope", "key", time.Minute, producer)
	require.NoError(t, err)

	store.Delete("scope", "key")

	_, err = Wrap(context.Background(), store, "scope", "key", time.Minute, producer)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
