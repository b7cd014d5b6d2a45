package sway

// Criterion is one condition of a criteria group.
//
// This is a sealed interface; the Match* types in this package are the
// only implementations. Valued criteria render as kind="value".
type Criterion interface {
	criterion()
}

// MatchAppID compares against the Wayland app id. Can be a regular
// expression.
type MatchAppID struct{ Value OrFocused[string] }

// MatchClass compares against the X11 window class. Can be a regular
// expression.
type MatchClass struct{ Value OrFocused[string] }

// MatchConID compares against the internal container id.
type MatchConID struct{ Value OrFocused[uint32] }

// MatchConMark compares against the container marks. Can be a regular
// expression.
type MatchConMark struct{ Mark string }

// MatchFloating matches floating windows.
type MatchFloating struct{}

// MatchID compares against the X11 window id.
type MatchID struct{ ID uint32 }

// MatchInstance compares against the X11 window instance.
type MatchInstance struct{ Value OrFocused[string] }

// MatchPID compares against the window's process id.
type MatchPID struct{ PID uint32 }

// MatchShell compares against the window shell, such as xdg_shell or
// xwayland.
type MatchShell struct{ Value OrFocused[string] }

// MatchTiling matches tiling windows.
type MatchTiling struct{}

// MatchTitle compares against the window title. Can be a regular
// expression.
type MatchTitle struct{ Value OrFocused[string] }

// MatchUrgent selects among urgent windows.
type MatchUrgent struct{ Which Urgency }

// MatchWindowRole compares against WM_WINDOW_ROLE.
type MatchWindowRole struct{ Value OrFocused[string] }

// MatchWindowType compares against _NET_WM_WINDOW_TYPE.
type MatchWindowType struct{ Type WindowType }

// MatchWorkspace compares against the name of the window's workspace.
// The focused marker matches every window on the focused workspace.
type MatchWorkspace struct{ Value OrFocused[string] }

// Urgency picks which urgent window a MatchUrgent selects.
type Urgency string

const (
	UrgentFirst  Urgency = "first"
	UrgentLast   Urgency = "last"
	UrgentLatest Urgency = "latest"
	UrgentNewest Urgency = "newest"
	UrgentOldest Urgency = "oldest"
	UrgentRecent Urgency = "recent"
)

// WindowType is an X11 window type.
type WindowType string

const (
	WindowNormal       WindowType = "normal"
	WindowDialog       WindowType = "dialog"
	WindowUtility      WindowType = "utility"
	WindowToolbar      WindowType = "toolbar"
	WindowSplash       WindowType = "splash"
	WindowMenu         WindowType = "menu"
	WindowDropdownMenu WindowType = "dropdown_menu"
	WindowPopupMenu    WindowType = "popup_menu"
	WindowTooltip      WindowType = "tooltip"
	WindowNotification WindowType = "notification"
)

func (MatchAppID) criterion()      {}
func (MatchClass) criterion()      {}
func (MatchConID) criterion()      {}
func (MatchConMark) criterion()    {}
func (MatchFloating) criterion()   {}
func (MatchID) criterion()         {}
func (MatchInstance) criterion()   {}
func (MatchPID) criterion()        {}
func (MatchShell) criterion()      {}
func (MatchTiling) criterion()     {}
func (MatchTitle) criterion()      {}
func (MatchUrgent) criterion()     {}
func (MatchWindowRole) criterion() {}
func (MatchWindowType) criterion() {}
func (MatchWorkspace) criterion()  {}

// AppID is shorthand for MatchAppID{Value(id)}.
func AppID(id string) MatchAppID { return MatchAppID{Value: Value(id)} }

// Class is shorthand for MatchClass{Value(class)}.
func Class(class string) MatchClass { return MatchClass{Value: Value(class)} }

// Title is shorthand for MatchTitle{Value(title)}.
func Title(title string) MatchTitle { return MatchTitle{Value: Value(title)} }

// ConID is shorthand for MatchConID{Value(id)}.
func ConID(id uint32) MatchConID { return MatchConID{Value: Value(id)} }
