package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/ollama-total/internal/log"
)

func TestCtxWithValues(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, log.Kv{}, log.ValuesFromCtx(ctx))

	ctx1 := log.CtxWithValues(ctx, log.Kv{"a": 1, "b": 2})
	ctx2 := log.CtxWithValues(ctx1, log.Kv{"b": 3, "c": 4})

	assert.Equal(t, log.Kv{"a": 1, "b": 2}, log.ValuesFromCtx(ctx1))
	assert.Equal(t, log.Kv{"a": 1, "b": 3, "c": 4}, log.ValuesFromCtx(ctx2))
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	l := log.Noop.WithValues(log.Kv{"a": 1}).WithCtxValues(ctx)
	l.Infof("nothing %d", 1)

	assert.Equal(t, ctx, l.SetValuesOnCtx(ctx, log.Kv{"a": 1}))
}
