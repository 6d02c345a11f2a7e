package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("returns embedded logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := WithLogger(context.Background(), logger)

		assert.Same(t, logger, FromContext(ctx))
		FromContext(ctx).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("falls back to default logger", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	scoped, logger := With(ctx, "reaction", "R1")
	FromContext(scoped).Info("from context")
	logger.Info("direct")

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("reaction=R1")))
	FromContext(ctx).Info("unscoped")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("reaction=R1")))
}
