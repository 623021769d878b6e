// Package goquery implements shorts extraction strategies that read page
// metadata from HTML meta tags using goquery.
package goquery

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shorts"
)

// Strategy names.
const (
	NameOGTitle          = "og-title"
	NameInteractionCount = "interaction-count"
)

// MetaConfig describes a meta tag whose content attribute carries a field.
type MetaConfig struct {
	Name     string
	Selector string
}

// Parser parses HTML documents and keeps the most recent result, so
// strategies sharing a Parser read one item page from a single parse.
// Parser is safe for concurrent use.
type Parser struct {
	mu  sync.Mutex
	src string
	doc *goquery.Document
}

// NewParser returns an empty Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the document for html, reusing the previous parse when
// html is unchanged.
func (p *Parser) Parse(html string) (*goquery.Document, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.doc != nil && p.src == html {
		return p.doc, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	p.src, p.doc = html, doc
	return doc, nil
}

// Option configures a MetaStrategy.
type Option func(*MetaStrategy)

// WithParser makes the strategy parse documents through p.
func WithParser(p *Parser) Option {
	return func(s *MetaStrategy) {
		s.parser = p
	}
}

// Ensure MetaStrategy implements shorts.Strategy at compile time.
var _ shorts.Strategy = (*MetaStrategy)(nil)

// MetaStrategy reads the content attribute of the first element matching
// a CSS selector. Missing or blank content is a miss.
type MetaStrategy struct {
	config MetaConfig
	parser *Parser
}

// NewMetaStrategy creates a MetaStrategy from a config. Without WithParser
// the strategy uses a Parser of its own.
func NewMetaStrategy(config MetaConfig, opts ...Option) *MetaStrategy {
	s := &MetaStrategy{config: config}
	for _, opt := range opts {
		opt(s)
	}
	if s.parser == nil {
		s.parser = NewParser()
	}
	return s
}

// OGTitle reads the OpenGraph title: <meta property="og:title" content="...">.
func OGTitle(opts ...Option) *MetaStrategy {
	return NewMetaStrategy(MetaConfig{
		Name:     NameOGTitle,
		Selector: `meta[property="og:title"]`,
	}, opts...)
}

// InteractionCount reads the microdata view count:
// <meta itemprop="interactionCount" content="...">.
func InteractionCount(opts ...Option) *MetaStrategy {
	return NewMetaStrategy(MetaConfig{
		Name:     NameInteractionCount,
		Selector: `meta[itemprop="interactionCount"]`,
	}, opts...)
}

// Name returns the strategy's identifier.
func (s *MetaStrategy) Name() string {
	return s.config.Name
}

// Extract parses the document and returns the trimmed content attribute.
// HTML entities in the attribute are decoded by the parser.
func (s *MetaStrategy) Extract(html string) (string, bool) {
	doc, err := s.parser.Parse(html)
	if err != nil {
		return "", false
	}

	content, ok := doc.Find(s.config.Selector).First().Attr("content")
	if !ok {
		return "", false
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return "", false
	}
	return content, true
}
