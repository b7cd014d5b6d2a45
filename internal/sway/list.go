package sway

// List is a ';'-separated sequence of commands, the payload of one
// RUN_COMMAND message. The zero value is an empty list.
type List struct {
	commands []Command
	text     []byte
}

// NewList returns a list holding cmds in order.
func NewList(cmds ...Command) *List {
	l := new(List)
	for _, c := range cmds {
		l.Add(c)
	}
	return l
}

// Add appends cmd. A bare SubCommand is wrapped in a Targeted unit without
// criteria. Units and criteria groups, including those nested in bindings
// and for_window, are copied, so later changes to them do not reach the
// list.
func (l *List) Add(cmd Command) *List {
	cmd = snapshot(cmd)
	if sub, ok := cmd.(SubCommand); ok {
		cmd = NewTargeted(sub)
	}
	if len(l.commands) > 0 {
		l.text = append(l.text, ';')
	}
	l.commands = append(l.commands, cmd)
	l.text = append(l.text, renderCommand(cmd)...)
	return l
}

// Commands returns copies of the entries in append order.
func (l *List) Commands() []Command {
	out := make([]Command, len(l.commands))
	for i, c := range l.commands {
		out[i] = snapshot(c)
	}
	return out
}

// Texts returns the text of each command sway replies for, in reply
// order: every sub-command of a targeted unit prefixed with the unit's
// criteria, and every other entry whole. Raw text is one entry even when
// it holds several commands.
func (l *List) Texts() []string {
	var out []string
	for _, c := range l.commands {
		t, ok := c.(*Targeted)
		if !ok || t == nil {
			out = append(out, renderCommand(c))
			continue
		}
		prefix := ""
		if t.criteria != nil {
			prefix = t.criteria.String()
		}
		for _, sub := range t.subs {
			out = append(out, prefix+renderSubCommand(sub))
		}
	}
	return out
}

// snapshot returns cmd with pointer variants dereferenced and every
// nested unit and criteria group copied.
func snapshot(cmd Command) Command {
	if t, ok := cmd.(*Targeted); ok {
		if t == nil {
			return cmd
		}
		return t.clone()
	}
	if inner, ok := deref(cmd); ok {
		cmd = inner
	}
	switch c := cmd.(type) {
	case AssignWorkspace:
		c.Criteria = c.Criteria.clone()
		return c
	case AssignOutput:
		c.Criteria = c.Criteria.clone()
		return c
	case NoFocus:
		c.Criteria = c.Criteria.clone()
		return c
	case ForWindow:
		c.Criteria = c.Criteria.clone()
		c.Command = snapshot(c.Command)
		return c
	case Bindsym:
		c.Command = snapshot(c.Command)
		return c
	case Bindcode:
		c.Command = snapshot(c.Command)
		return c
	case Bindswitch:
		c.Command = snapshot(c.Command)
		return c
	}
	return cmd
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.commands)
}

// String returns the rendered list.
func (l *List) String() string {
	return string(l.text)
}

// Bytes returns a copy of the rendered list.
func (l *List) Bytes() []byte {
	return append([]byte(nil), l.text...)
}

// Rebuild renders the list from its entries, ignoring the cache.
func (l *List) Rebuild() string {
	return joinAs(l.commands, ";", func(c Command) string {
		if t, ok := c.(*Targeted); ok && t != nil {
			return t.Rebuild()
		}
		return renderCommand(c)
	})
}
