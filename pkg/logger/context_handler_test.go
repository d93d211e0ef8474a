package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/notifykit/pkg/logger"
)

func TestContextHandlerPreservesExtractors(t *testing.T) {
	type key struct{}
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(key{}); v != nil {
			return slog.String("id", v.(string)), true
		}
		return slog.Attr{}, false
	}

	t.Run("across WithAttrs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		h := logger.NewContextHandler(slog.NewJSONHandler(buf, nil), extractor)
		log := slog.New(h.WithAttrs([]slog.Attr{slog.String("static", "yes")}))

		ctx := context.WithValue(context.Background(), key{}, "7")
		log.InfoContext(ctx, "msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "yes", entry["static"])
		assert.Equal(t, "7", entry["id"])
	})

	t.Run("across WithGroup", func(t *testing.T) {
		buf := &bytes.Buffer{}
		h := logger.NewContextHandler(slog.NewJSONHandler(buf, nil), extractor)
		log := slog.New(h.WithGroup("grp"))

		ctx := context.WithValue(context.Background(), key{}, "7")
		log.InfoContext(ctx, "msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		grp, ok := entry["grp"].(map[string]any)
		require.True(t, ok, "grouped attributes expected under the group key")
		assert.Equal(t, "7", grp["id"])
	})
}

func TestContextHandlerFiltersNilExtractors(t *testing.T) {
	buf := &bytes.Buffer{}
	h := logger.NewContextHandler(slog.NewJSONHandler(buf, nil), nil, nil)
	log := slog.New(h)

	log.Info("msg")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "msg", entry["msg"])
}
