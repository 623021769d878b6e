package shorts

import (
	"net/url"
	"strings"
)

// Field names of the exported record shape, in export order.
// CSV headers and XML element names are derived from these.
const (
	FieldID           = "ID"
	FieldTitle        = "Title"
	FieldViewCount    = "View Count"
	FieldShortURL     = "Short URL"
	FieldThumbnailURL = "Thumbnail URL"
	FieldShortID      = "Short ID"
)

// URL templates.
const (
	BaseURL      = "https://www.youtube.com"
	ImageBaseURL = "https://i.ytimg.com"

	// listingFilter restricts search results to the shorts category.
	listingFilter = "EgIQAQ%253D%253D"
)

// IDLength is the fixed length of an item identifier.
const IDLength = 11

// Record is the canonical metadata of a single short.
// Records are built once by BuildRecord and never mutated.
type Record struct {
	Sequence     int    `json:"ID"`
	Title        string `json:"Title"`
	ViewText     string `json:"View Count"`
	ItemURL      string `json:"Short URL"`
	ThumbnailURL string `json:"Thumbnail URL"`
	ItemID       string `json:"Short ID"`
}

// Field is a single named value of an exported record.
type Field struct {
	Name  string
	Value any
}

// Fields returns the record as an ordered mapping of exactly six fields.
func (r *Record) Fields() []Field {
	return []Field{
		{Name: FieldID, Value: r.Sequence},
		{Name: FieldTitle, Value: r.Title},
		{Name: FieldViewCount, Value: r.ViewText},
		{Name: FieldShortURL, Value: r.ItemURL},
		{Name: FieldThumbnailURL, Value: r.ThumbnailURL},
		{Name: FieldShortID, Value: r.ItemID},
	}
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Sequence < 1 {
		return Errorf(EINVALID, "record sequence must be positive")
	}
	if !IsValidID(r.ItemID) {
		return Errorf(EINVALID, "invalid short ID %q", r.ItemID)
	}
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.ViewText == "" {
		return Errorf(EINVALID, "record view count required")
	}
	return nil
}

// IsValidID reports whether id has the identifier shape:
// exactly 11 characters from [A-Za-z0-9_-].
func IsValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if !isIDChar(id[i]) {
			return false
		}
	}
	return true
}

func isIDChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

// ItemURL returns the page URL of the short with the given ID.
func ItemURL(id string) string {
	return BaseURL + "/shorts/" + id
}

// ThumbnailURL returns the thumbnail image URL of the short with the given ID.
func ThumbnailURL(id string) string {
	return ImageBaseURL + "/vi/" + id + "/hqdefault.jpg"
}

// NormalizeHashtag strips a leading "#" and surrounding whitespace.
func NormalizeHashtag(hashtag string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(hashtag), "#"))
}

// ListingURL returns the search results URL for a hashtag, filtered to shorts.
func ListingURL(hashtag string) string {
	query := url.QueryEscape("#" + NormalizeHashtag(hashtag))
	return BaseURL + "/results?search_query=" + query + "&sp=" + listingFilter
}

// FallbackTitle is the title used when no strategy finds one.
func FallbackTitle(id string) string {
	return "Short " + id
}

// BuildRecord assembles a Record from extracted fields.
// A missing title is replaced by FallbackTitle and the view value is
// normalized with BuildViewText.
func BuildRecord(seq int, id string, title Match, views ViewValue) *Record {
	t := strings.TrimSpace(title.Value)
	if !title.OK || t == "" {
		t = FallbackTitle(id)
	}
	return &Record{
		Sequence:     seq,
		Title:        t,
		ViewText:     BuildViewText(views),
		ItemURL:      ItemURL(id),
		ThumbnailURL: ThumbnailURL(id),
		ItemID:       id,
	}
}
