package shorts

// Strategy is a single attempt at pulling one field out of a document.
// Implementations are pure functions of the document text.
type Strategy interface {
	// Name identifies the strategy in logs and matches.
	Name() string

	// Extract returns the field value. The bool result is false when the
	// document does not carry the field in the encoding this strategy reads.
	Extract(doc string) (string, bool)
}

// StrategyFunc adapts a function into a named Strategy.
func StrategyFunc(name string, fn func(doc string) (string, bool)) Strategy {
	return &funcStrategy{name: name, fn: fn}
}

type funcStrategy struct {
	name string
	fn   func(doc string) (string, bool)
}

func (s *funcStrategy) Name() string { return s.name }

func (s *funcStrategy) Extract(doc string) (string, bool) { return s.fn(doc) }

// Match is the outcome of running a Cascade.
// The zero Match means no strategy produced a value.
type Match struct {
	Value    string
	Strategy string
	OK       bool
}

// Cascade is an ordered list of strategies. The first strategy that
// produces a value determines the result.
type Cascade []Strategy

// Extract tries each strategy in order and stops at the first success.
func (c Cascade) Extract(doc string) Match {
	for _, s := range c {
		if v, ok := s.Extract(doc); ok {
			return Match{Value: v, Strategy: s.Name(), OK: true}
		}
	}
	return Match{}
}

// Names returns the strategy names in priority order.
func (c Cascade) Names() []string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name()
	}
	return names
}

// PostProcess wraps s so that every value it extracts is passed through fn.
func PostProcess(s Strategy, fn func(string) string) Strategy {
	return &postStrategy{next: s, fn: fn}
}

type postStrategy struct {
	next Strategy
	fn   func(string) string
}

func (s *postStrategy) Name() string { return s.next.Name() }

func (s *postStrategy) Extract(doc string) (string, bool) {
	v, ok := s.next.Extract(doc)
	if !ok {
		return "", false
	}
	return s.fn(v), true
}
