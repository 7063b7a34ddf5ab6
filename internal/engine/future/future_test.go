// Released under an MIT license. See LICENSE.

package future_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
	"github.com/michaelmacinnis/jsi/internal/engine/future"
)

func TestSettlesOnce(t *testing.T) {
	f := future.New()

	assert.True(t, f.Settle(str.New("first"), nil))
	assert.False(t, f.Settle(nil, errors.New("second")))

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", common.String(v))
}

func TestReject(t *testing.T) {
	f := future.New()

	go f.Settle(nil, errors.New("failed"))

	_, err := f.Await(context.Background())
	assert.EqualError(t, err, "failed")
}

func TestAwaitContext(t *testing.T) {
	f := future.New()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-f.Done():
		t.Fatal("future settled")
	default:
	}
}

func TestThen(t *testing.T) {
	f := future.New()

	got := make(chan string, 1)

	f.Then(func(c cell.I) {
		got <- common.String(c)
	}, nil)

	f.Settle(str.New("value"), nil)

	assert.Equal(t, "value", <-got)
}
