package domain

// Fact is a single read-only line of cat trivia.
type Fact string

// FactRotator cycles through a fixed, non-empty list of facts.
// It is not safe for concurrent use; callers serialize Tick and Current.
type FactRotator struct {
	facts []Fact
	index int
}

// NewFactRotator returns a rotator positioned at the first fact.
// An empty list is a configuration error.
func NewFactRotator(facts []Fact) (*FactRotator, error) {
	if len(facts) == 0 {
		return nil, NewEmptyCatalogError("fact")
	}
	owned := make([]Fact, len(facts))
	copy(owned, facts)
	return &FactRotator{facts: owned}, nil
}

// Tick advances to the next fact, wrapping to the first after the last.
func (r *FactRotator) Tick() {
	r.index = (r.index + 1) % len(r.facts)
}

// Current returns the fact at the current position.
func (r *FactRotator) Current() Fact {
	return r.facts[r.index]
}

func (r *FactRotator) Index() int {
	return r.index
}

func (r *FactRotator) Len() int {
	return len(r.facts)
}
