package sway

// Command is an entry of a command list: a *Targeted unit, a Standalone
// command, a SubCommand (rendered as a unit without criteria) or Raw text.
//
// This is a sealed interface.
type Command interface {
	command()
}

// Raw is command text passed through verbatim. Nothing checks it; use it
// for syntax this package does not model.
type Raw string

func (Raw) command() {}

// Render returns the protocol text of any command.
func Render(c Command) string {
	return renderCommand(c)
}
