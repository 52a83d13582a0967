package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_Fallback(t *testing.T) {
	assert.Same(t, Discard(), FromContext(context.Background()))
	assert.Same(t, Discard(), FromContext(nil)) //nolint:staticcheck
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}

func TestWithLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=v")

	assert.Equal(t, context.Background(), WithLogger(context.Background(), nil))
}
