package regexp_test

import (
	"testing"

	"github.com/fwojciec/shorts"
	shortsregexp "github.com/fwojciec/shorts/regexp"
	"github.com/stretchr/testify/assert"
)

// Compile-time verification that IDExtractor implements shorts.IDExtractor.
var _ shorts.IDExtractor = (*shortsregexp.IDExtractor)(nil)

func TestIDExtractor_ExtractIDs(t *testing.T) {
	t.Parallel()

	t.Run("drops later duplicates and keeps first-seen order", func(t *testing.T) {
		t.Parallel()

		doc := `{"url":"/shorts/aaaaaaaaaaa"},{"url":"/shorts/bbbbbbbbbbb"},{"url":"/shorts/aaaaaaaaaaa"}`

		ids := shortsregexp.NewIDExtractor().ExtractIDs(doc)

		assert.Equal(t, []string{"aaaaaaaaaaa", "bbbbbbbbbbb"}, ids)
	})

	t.Run("interleaved repeats yield each identifier once", func(t *testing.T) {
		t.Parallel()

		doc := `"/shorts/aaaaaaaaaaa" "/shorts/bbbbbbbbbbb" "/shorts/aaaaaaaaaaa" ` +
			`"/shorts/ccccccccccc" "/shorts/aaaaaaaaaaa"`

		ids := shortsregexp.NewIDExtractor().ExtractIDs(doc)

		assert.Len(t, ids, 3)
		assert.Equal(t, []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc"}, ids)
	})

	t.Run("matches only quoted references of the identifier shape", func(t *testing.T) {
		t.Parallel()

		doc := `<a href="/shorts/xxxxxxxxxxx?feature=share">` +
			`"/shorts/too_long_id_1"` +
			`"/shorts/short"` +
			`"/watch/wwwwwwwwwww"` +
			`"/shorts/Ab3_-Zz9q0P"`

		ids := shortsregexp.NewIDExtractor().ExtractIDs(doc)

		assert.Equal(t, []string{"Ab3_-Zz9q0P"}, ids)
	})

	t.Run("returns empty slice when nothing is referenced", func(t *testing.T) {
		t.Parallel()

		ids := shortsregexp.NewIDExtractor().ExtractIDs("<html><body>no results</body></html>")

		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})

	t.Run("every identifier has the identifier shape", func(t *testing.T) {
		t.Parallel()

		doc := `"/shorts/aaaaaaaaaaa","/shorts/B-_9bbbbbbb","/shorts/ccccccccccc"`

		for _, id := range shortsregexp.NewIDExtractor().ExtractIDs(doc) {
			assert.True(t, shorts.IsValidID(id), id)
		}
	})
}

func TestTitleRuns(t *testing.T) {
	t.Parallel()

	t.Run("reads a single text run", func(t *testing.T) {
		t.Parallel()

		doc := `var data = {"title":{"runs":[{"text":"  Sunset over the bay "}]},"x":1};`

		v, ok := shortsregexp.TitleRuns().Extract(doc)

		assert.True(t, ok)
		assert.Equal(t, "Sunset over the bay", v)
	})

	t.Run("decodes unicode and quote escapes", func(t *testing.T) {
		t.Parallel()

		doc := `"title" : {"runs": [ {"text": "Caf\u00e9 \u0026 \"cats\""} ]}`

		v, ok := shortsregexp.TitleRuns().Extract(doc)

		assert.True(t, ok)
		assert.Equal(t, `Café & "cats"`, v)
	})

	t.Run("does not match multi-run titles", func(t *testing.T) {
		t.Parallel()

		doc := `"title":{"runs":[{"text":"part one"},{"text":"part two"}]}`

		_, ok := shortsregexp.TitleRuns().Extract(doc)

		assert.False(t, ok)
	})

	t.Run("misses documents without a title run", func(t *testing.T) {
		t.Parallel()

		_, ok := shortsregexp.TitleRuns().Extract(`{"title":"plain"}`)

		assert.False(t, ok)
	})

	t.Run("names the strategy", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, shortsregexp.NameTitleRuns, shortsregexp.TitleRuns().Name())
	})
}

func TestViewCountRenderer(t *testing.T) {
	t.Parallel()

	t.Run("reads the renderer simple text", func(t *testing.T) {
		t.Parallel()

		doc := `"viewCount":{"videoViewCountRenderer":{"viewCount":{"simpleText":"1,234,567 views"},"shortViewCount":{"simpleText":"1.2M views"}}}`

		v, ok := shortsregexp.ViewCountRenderer().Extract(doc)

		assert.True(t, ok)
		assert.Equal(t, "1,234,567 views", v)
	})

	t.Run("misses documents without a renderer", func(t *testing.T) {
		t.Parallel()

		_, ok := shortsregexp.ViewCountRenderer().Extract(`"viewCountText":{"simpleText":"12K views"}`)

		assert.False(t, ok)
	})
}

func TestViewCountText(t *testing.T) {
	t.Parallel()

	v, ok := shortsregexp.ViewCountText().Extract(`{"viewCountText": { "simpleText": "12K views" }}`)

	assert.True(t, ok)
	assert.Equal(t, "12K views", v)
}

func TestAccessibilityLabel(t *testing.T) {
	t.Parallel()

	t.Run("reads the label", func(t *testing.T) {
		t.Parallel()

		v, ok := shortsregexp.AccessibilityLabel().Extract(`"accessibility":{"accessibilityData":{"label":"7,123,456 views"}}`)

		assert.True(t, ok)
		assert.Equal(t, "7,123,456 views", v)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		v, ok := shortsregexp.AccessibilityLabel().Extract(`"AccessibilityData":{"Label":"99 views"}`)

		assert.True(t, ok)
		assert.Equal(t, "99 views", v)
	})
}
