package mock

import "github.com/fwojciec/shorts"

var (
	_ shorts.Extractor   = (*Extractor)(nil)
	_ shorts.IDExtractor = (*IDExtractor)(nil)
	_ shorts.Strategy    = (*Strategy)(nil)
)

// Extractor is a mock implementation of shorts.Extractor.
type Extractor struct {
	ExtractFn func(doc string) (*shorts.ExtractResult, error)
}

func (e *Extractor) Extract(doc string) (*shorts.ExtractResult, error) {
	return e.ExtractFn(doc)
}

// IDExtractor is a mock implementation of shorts.IDExtractor.
type IDExtractor struct {
	ExtractIDsFn func(doc string) []string
}

func (e *IDExtractor) ExtractIDs(doc string) []string {
	return e.ExtractIDsFn(doc)
}

// Strategy is a mock implementation of shorts.Strategy.
type Strategy struct {
	NameFn    func() string
	ExtractFn func(doc string) (string, bool)
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Extract(doc string) (string, bool) {
	return s.ExtractFn(doc)
}
