package etree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/shorts"
	shortsetree "github.com/fwojciec/shorts/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("starts with an XML declaration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, shortsetree.NewEncoder().Encode(&buf, nil))

		assert.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
	})

	t.Run("writes one element per record with field children", func(t *testing.T) {
		t.Parallel()

		records := []*shorts.Record{
			shorts.BuildRecord(1, "aaaaaaaaaaa", shorts.Match{Value: "Fish & chips <3", OK: true}, shorts.ViewsText("5 views")),
			shorts.BuildRecord(2, "bbbbbbbbbbb", shorts.Match{}, shorts.NoViews()),
		}

		var buf bytes.Buffer
		require.NoError(t, shortsetree.NewEncoder().Encode(&buf, records))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
		root := doc.SelectElement("Shorts")
		require.NotNil(t, root)

		items := root.SelectElements("Short")
		require.Len(t, items, 2)

		var tags []string
		for _, child := range items[0].ChildElements() {
			tags = append(tags, child.Tag)
			assert.NotEmpty(t, child.Text(), child.Tag)
		}
		assert.Equal(t, []string{"ID", "Title", "ViewCount", "ShortURL", "ThumbnailURL", "ShortID"}, tags)

		assert.Equal(t, "1", items[0].SelectElement("ID").Text())
		assert.Equal(t, "Fish & chips <3", items[0].SelectElement("Title").Text())
		assert.Equal(t, "Short bbbbbbbbbbb", items[1].SelectElement("Title").Text())
		assert.Equal(t, "Unknown views", items[1].SelectElement("ViewCount").Text())
	})

	t.Run("writes a compact document by default", func(t *testing.T) {
		t.Parallel()

		records := []*shorts.Record{
			shorts.BuildRecord(1, "aaaaaaaaaaa", shorts.Match{Value: "Surf", OK: true}, shorts.ViewsText("5 views")),
		}

		var buf bytes.Buffer
		require.NoError(t, shortsetree.NewEncoder().Encode(&buf, records))

		assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
			`<Shorts><Short><ID>1</ID><Title>Surf</Title><ViewCount>5 views</ViewCount>`+
			`<ShortURL>https://www.youtube.com/shorts/aaaaaaaaaaa</ShortURL>`+
			`<ThumbnailURL>https://i.ytimg.com/vi/aaaaaaaaaaa/hqdefault.jpg</ThumbnailURL>`+
			`<ShortID>aaaaaaaaaaa</ShortID></Short></Shorts>`, buf.String())
	})

	t.Run("indents nested elements when asked", func(t *testing.T) {
		t.Parallel()

		records := []*shorts.Record{
			shorts.BuildRecord(1, "aaaaaaaaaaa", shorts.Match{Value: "Surf", OK: true}, shorts.NoViews()),
		}

		var buf bytes.Buffer
		require.NoError(t, shortsetree.NewEncoder(shortsetree.WithIndent(2)).Encode(&buf, records))

		assert.Contains(t, buf.String(), "\n  <Short>\n    <ID>1</ID>\n")
	})

	t.Run("writes an empty root for no records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, shortsetree.NewEncoder().Encode(&buf, []*shorts.Record{}))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
		root := doc.SelectElement("Shorts")
		require.NotNil(t, root)
		assert.Empty(t, root.ChildElements())
	})
}

func TestElementName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ThumbnailURL", shortsetree.ElementName(shorts.FieldThumbnailURL))
	assert.Equal(t, "ID", shortsetree.ElementName(shorts.FieldID))
}
