package shorts_test

import (
	"testing"

	"github.com/fwojciec/shorts"
	"github.com/stretchr/testify/assert"
)

func TestCleanViewText(t *testing.T) {
	t.Parallel()

	t.Run("removes escaped markup fragments", func(t *testing.T) {
		t.Parallel()

		got := shorts.CleanViewText(`1,234 \u003cspan class=\"x\"\u003eviews\u003c/span\u003e`)

		assert.Equal(t, "1,234 views", got)
	})

	t.Run("collapses newlines and trims", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "12K  views", shorts.CleanViewText("\n12K\n views \n"))
	})
}

func TestNewCascadeExtractor(t *testing.T) {
	t.Parallel()

	e := shorts.NewCascadeExtractor(
		shorts.Cascade{always("og", "  Title  ")},
		shorts.Cascade{never("renderer"), always("label", " 7\n views ")},
	)

	res, err := e.Extract("doc")

	assert.NoError(t, err)
	assert.Equal(t, shorts.Match{Value: "Title", Strategy: "og", OK: true}, res.Title)
	assert.Equal(t, shorts.Match{Value: "7  views", Strategy: "label", OK: true}, res.Views)
}
