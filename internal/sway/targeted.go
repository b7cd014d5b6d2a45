package sway

// Targeted is a unit of sub-commands sharing one optional criteria group:
// [criteria]sub1,sub2,... Without criteria the sub-commands apply to the
// focused container.
//
// The rendered text is maintained incrementally. Where called after the
// first Do rebuilds the whole unit, so supply criteria first.
type Targeted struct {
	criteria *CriteriaGroup
	subs     []SubCommand
	text     []byte
}

// NewTargeted returns a unit without criteria running first.
func NewTargeted(first SubCommand) *Targeted {
	return new(Targeted).Do(first)
}

// Select returns a unit with the criteria group [first] and no
// sub-commands yet.
func Select(first Criterion) *Targeted {
	return new(Targeted).Where(first)
}

func (*Targeted) command() {}

// Do appends a sub-command. A pointer variant is stored by value.
func (t *Targeted) Do(sub SubCommand) *Targeted {
	if inner, ok := deref(sub); ok {
		sub = inner
	}
	if len(t.subs) > 0 {
		t.text = append(t.text, ',')
	}
	t.subs = append(t.subs, sub)
	t.text = append(t.text, renderSubCommand(sub)...)
	return t
}

// Where appends a criterion to the criteria group, creating it if needed.
func (t *Targeted) Where(c Criterion) *Targeted {
	if t.criteria == nil {
		t.criteria = NewCriteriaGroup(c)
		if len(t.subs) > 0 {
			t.text = append(t.text[:0], t.Rebuild()...)
			return t
		}
		t.text = append(t.text[:0], t.criteria.text...)
		return t
	}
	t.criteria.Add(c)
	if len(t.subs) > 0 {
		t.text = append(t.text[:0], t.Rebuild()...)
		return t
	}
	t.text = t.text[:len(t.text)-1]
	t.text = append(t.text, ' ')
	t.text = append(t.text, renderCriterion(c)...)
	t.text = append(t.text, ']')
	return t
}

// Criteria returns a copy of the criteria group, or nil when the unit has
// none. Adding to the copy does not change the unit.
func (t *Targeted) Criteria() *CriteriaGroup {
	return t.criteria.clone()
}

// SubCommands returns a copy of the sub-commands in append order.
func (t *Targeted) SubCommands() []SubCommand {
	return append([]SubCommand(nil), t.subs...)
}

// String returns the rendered unit.
func (t *Targeted) String() string {
	return string(t.text)
}

// Rebuild renders the unit from its parts, ignoring the cache.
func (t *Targeted) Rebuild() string {
	prefix := ""
	if t.criteria != nil {
		prefix = t.criteria.Rebuild()
	}
	return prefix + joinAs(t.subs, ",", renderSubCommand)
}

func (t *Targeted) clone() *Targeted {
	return &Targeted{
		criteria: t.criteria.clone(),
		subs:     append([]SubCommand(nil), t.subs...),
		text:     append([]byte(nil), t.text...),
	}
}
