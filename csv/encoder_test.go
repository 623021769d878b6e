package csv_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/fwojciec/shorts"
	shortscsv "github.com/fwojciec/shorts/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows in field order", func(t *testing.T) {
		t.Parallel()

		records := []*shorts.Record{
			shorts.BuildRecord(1, "aaaaaaaaaaa", shorts.Match{Value: "Hello, world", OK: true}, shorts.ViewsText("12 views")),
		}

		var buf bytes.Buffer
		require.NoError(t, shortscsv.NewEncoder().Encode(&buf, records))

		want := "ID,Title,View Count,Short URL,Thumbnail URL,Short ID\r\n" +
			"1,\"Hello, world\",12 views,https://www.youtube.com/shorts/aaaaaaaaaaa,https://i.ytimg.com/vi/aaaaaaaaaaa/hqdefault.jpg,aaaaaaaaaaa\r\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("writes nothing for no records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, shortscsv.NewEncoder().Encode(&buf, []*shorts.Record{}))

		assert.Empty(t, buf.String())
	})

	t.Run("every row has six non-empty fields", func(t *testing.T) {
		t.Parallel()

		records := []*shorts.Record{
			shorts.BuildRecord(1, "aaaaaaaaaaa", shorts.Match{}, shorts.NoViews()),
			shorts.BuildRecord(2, "bbbbbbbbbbb", shorts.Match{Value: "\"Quoted\"", OK: true}, shorts.ViewsCount(2_100_000)),
		}

		var buf bytes.Buffer
		require.NoError(t, shortscsv.NewEncoder().Encode(&buf, records))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for _, row := range rows {
			require.Len(t, row, 6)
			for _, cell := range row {
				assert.NotEmpty(t, cell)
			}
		}
		assert.Equal(t, []string{"2", `"Quoted"`, "2.1M views"}, rows[2][:3])
		assert.Equal(t, "Unknown views", rows[1][2])
		assert.Equal(t, "Short aaaaaaaaaaa", rows[1][1])
	})
}
