package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/shorts"
	"github.com/fwojciec/shorts/mock"
	shortsslog "github.com/fwojciec/shorts/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("logs record count and hashtag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var got []*shorts.Record
		inner := &mock.Exporter{
			ExportFn: func(ctx context.Context, run *shorts.Run, records []*shorts.Record) error {
				got = records
				return nil
			},
		}
		records := []*shorts.Record{
			shorts.BuildRecord(1, "aaaaaaaaaaa", shorts.Match{}, shorts.NoViews()),
			shorts.BuildRecord(2, "bbbbbbbbbbb", shorts.Match{}, shorts.NoViews()),
		}

		err := shortsslog.NewLoggingExporter(inner, logger).Export(context.Background(), &shorts.Run{Hashtag: "travel"}, records)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		output := buf.String()
		assert.Contains(t, output, "export")
		assert.Contains(t, output, "hashtag=travel")
		assert.Contains(t, output, "records=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Exporter{
			ExportFn: func(ctx context.Context, run *shorts.Run, records []*shorts.Record) error {
				return errors.New("disk full")
			},
		}

		err := shortsslog.NewLoggingExporter(inner, logger).Export(context.Background(), nil, nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="disk full"`)
		assert.Contains(t, buf.String(), "records=0")
	})
}
