package sway

// CriteriaGroup is a non-empty, ordered set of criteria rendered as
// [c1 c2 ...]. Criteria can only be appended.
type CriteriaGroup struct {
	criteria []Criterion
	text     []byte
}

// NewCriteriaGroup returns a group holding first.
func NewCriteriaGroup(first Criterion) *CriteriaGroup {
	if inner, ok := deref(first); ok {
		first = inner
	}
	g := &CriteriaGroup{criteria: []Criterion{first}}
	g.text = append(g.text, '[')
	g.text = append(g.text, renderCriterion(first)...)
	g.text = append(g.text, ']')
	return g
}

// Add appends c and returns the group. Pointer variants are stored by
// value.
func (g *CriteriaGroup) Add(c Criterion) *CriteriaGroup {
	if inner, ok := deref(c); ok {
		c = inner
	}
	g.criteria = append(g.criteria, c)
	g.text = g.text[:len(g.text)-1]
	g.text = append(g.text, ' ')
	g.text = append(g.text, renderCriterion(c)...)
	g.text = append(g.text, ']')
	return g
}

// Criteria returns a copy of the criteria in append order.
func (g *CriteriaGroup) Criteria() []Criterion {
	return append([]Criterion(nil), g.criteria...)
}

// Len returns the number of criteria.
func (g *CriteriaGroup) Len() int {
	return len(g.criteria)
}

// String returns the rendered group.
func (g *CriteriaGroup) String() string {
	return string(g.text)
}

// Rebuild renders the group from its criteria, ignoring the cache.
func (g *CriteriaGroup) Rebuild() string {
	return "[" + joinAs(g.criteria, " ", renderCriterion) + "]"
}

func (g *CriteriaGroup) clone() *CriteriaGroup {
	if g == nil {
		return nil
	}
	return &CriteriaGroup{
		criteria: append([]Criterion(nil), g.criteria...),
		text:     append([]byte(nil), g.text...),
	}
}
