package main

import (
	"github.com/fwojciec/shorts"
	"github.com/fwojciec/shorts/goquery"
	"github.com/fwojciec/shorts/regexp"
)

// TitleStrategies returns the title cascade in priority order. Meta tags
// are read through parser.
func TitleStrategies(parser *goquery.Parser) shorts.Cascade {
	return shorts.Cascade{
		goquery.OGTitle(goquery.WithParser(parser)),
		regexp.TitleRuns(),
	}
}

// ViewStrategies returns the view count cascade in priority order.
func ViewStrategies(parser *goquery.Parser) shorts.Cascade {
	return shorts.Cascade{
		regexp.ViewCountRenderer(),
		regexp.ViewCountText(),
		regexp.AccessibilityLabel(),
		goquery.InteractionCount(goquery.WithParser(parser)),
	}
}

// NewExtractor returns the item extractor used by the runner. Both cascades
// share one Parser so each item page is parsed once.
func NewExtractor() *shorts.CascadeExtractor {
	parser := goquery.NewParser()
	return shorts.NewCascadeExtractor(TitleStrategies(parser), ViewStrategies(parser))
}
