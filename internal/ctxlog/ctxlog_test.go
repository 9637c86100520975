package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the attached logger", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := WithLogger(context.Background(), logger)
		assert.Same(t, logger, FromContext(ctx))
	})

	t.Run("falls back to a discarding logger", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
		assert.NotPanics(t, func() { logger.Info("nobody hears this") })
	})
}

func TestWithCompileID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	ctx, id := WithCompileID(ctx)

	_, err := uuid.Parse(id)
	require.NoError(t, err, "compile id should be a UUID")

	FromContext(ctx).Info("compiling")
	assert.Contains(t, buf.String(), "compile_id="+id)
}

func TestWithCompileID_Unique(t *testing.T) {
	_, first := WithCompileID(context.Background())
	_, second := WithCompileID(context.Background())
	assert.NotEqual(t, first, second)
}
