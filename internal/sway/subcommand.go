package sway

// SubCommand is an operation applied to the focused container or to the
// containers selected by a criteria group.
//
// This is a sealed interface. Every SubCommand is also a Command; adding
// one to a List wraps it in a Targeted unit without criteria.
type SubCommand interface {
	Command
	subCommand()
}

// BorderStyle is the style argument of border.
type BorderStyle string

const (
	BorderNone   BorderStyle = "none"
	BorderNormal BorderStyle = "normal"
	BorderCSD    BorderStyle = "csd"
	BorderPixel  BorderStyle = "pixel"
	BorderToggle BorderStyle = "toggle"
)

// Border sets the border style. Thickness only applies to normal and
// pixel; when nil its position is still rendered ("border normal ").
type Border struct {
	Style     BorderStyle
	Thickness *uint32
}

// Exit exits sway.
type Exit struct{}

// Floating makes the container floating, tiled, or the opposite.
type Floating struct{ State EnDisTog }

// FocusTarget is the argument of focus.
type FocusTarget string

const (
	// FocusThis focuses the containers selected by criteria.
	FocusThis       FocusTarget = ""
	FocusUp         FocusTarget = "up"
	FocusRight      FocusTarget = "right"
	FocusDown       FocusTarget = "down"
	FocusLeft       FocusTarget = "left"
	FocusChild      FocusTarget = "child"
	FocusParent     FocusTarget = "parent"
	FocusTiling     FocusTarget = "tiling"
	FocusFloating   FocusTarget = "floating"
	FocusModeToggle FocusTarget = "mode_toggle"
)

// Focus moves focus.
type Focus struct{ Target FocusTarget }

// FocusCycle focuses the previous or next container in the current
// layout. Sibling keeps focus on the sibling itself instead of its last
// active child.
type FocusCycle struct {
	Next    bool
	Sibling bool
}

// FocusOutput moves focus to an output.
type FocusOutput struct{ Output Output }

// Fullscreen changes the fullscreen state, across all outputs when Global
// is set.
type Fullscreen struct {
	State  EnDisTog
	Global bool
}

// Gaps changes gaps at runtime.
type Gaps struct {
	Direction GapsDirection
	Scope     GapsScope
	Adjust    Adjust
	Amount    uint32
}

// IdleMode is when an idle inhibitor is active.
type IdleMode string

const (
	IdleFocus      IdleMode = "focus"
	IdleFullscreen IdleMode = "fullscreen"
	IdleOpen       IdleMode = "open"
	IdleNone       IdleMode = "none"
	IdleVisible    IdleMode = "visible"
)

// InhibitIdle sets or unsets an idle inhibitor for the view.
type InhibitIdle struct{ Mode IdleMode }

// Kill closes the container.
type Kill struct{}

// LayoutMode is a container layout.
type LayoutMode string

const (
	LayoutDefault  LayoutMode = "default"
	LayoutSplitH   LayoutMode = "splith"
	LayoutSplitV   LayoutMode = "splitv"
	LayoutStacking LayoutMode = "stacking"
	LayoutTabbed   LayoutMode = "tabbed"
)

// Layout sets the layout of the container.
type Layout struct{ Mode LayoutMode }

// ToggleMode is an argument of layout toggle.
type ToggleMode string

const (
	ToggleAll      ToggleMode = "all"
	ToggleSplit    ToggleMode = "split"
	ToggleTabbed   ToggleMode = "tabbed"
	ToggleStacking ToggleMode = "stacking"
	ToggleSplitV   ToggleMode = "splitv"
	ToggleSplitH   ToggleMode = "splith"
)

// LayoutToggle cycles the layout. No modes cycles stacking, tabbed and
// the last split layout.
type LayoutToggle struct{ Modes []ToggleMode }

// MarkMode is the flag set of mark. MarkDefault replaces existing marks.
type MarkMode string

const (
	MarkDefault       MarkMode = ""
	MarkAdd           MarkMode = "--add"
	MarkReplace       MarkMode = "--replace"
	MarkToggle        MarkMode = "--toggle"
	MarkAddToggle     MarkMode = "--add --toggle"
	MarkReplaceToggle MarkMode = "--replace --toggle"
)

// Mark marks the container with an identifier.
type Mark struct {
	Mode MarkMode
	Name string
}

// MaxRenderTime sets how many milliseconds before composition the view is
// told to render. Zero renders "off".
type MaxRenderTime struct{ Msec uint32 }

// MoveDirection moves the container. Pixels are ignored for tiled
// containers.
type MoveDirection struct {
	Direction Direction
	Px        int32
}

// MovePosition moves the container to a position in the workspace.
type MovePosition struct{ X, Y Length }

// MoveAbsolutePosition moves the container relative to all outputs.
type MoveAbsolutePosition struct{ X, Y uint32 }

// MoveCenter centers the container on the workspace, or on all outputs
// when Absolute is set.
type MoveCenter struct{ Absolute bool }

// MoveCursor centers the container on the cursor.
type MoveCursor struct{}

// MoveToMark moves the container to the container with the mark.
type MoveToMark struct{ Mark string }

// MoveToWorkspace moves the container to a workspace.
type MoveToWorkspace struct {
	Workspace          Workspace
	NoAutoBackAndForth bool
}

// MoveToScratchpad moves the container to the scratchpad.
type MoveToScratchpad struct{}

// MoveToOutput moves the container to an output.
type MoveToOutput struct{ Output Output }

// MoveWorkspaceToOutput moves the focused workspace to an output.
type MoveWorkspaceToOutput struct{ Output Output }

// Nop does nothing. The comment is logged by sway; an empty comment keeps
// its position ("nop ").
type Nop struct{ Comment string }

// OpacityMode is how opacity applies its value.
type OpacityMode string

const (
	OpacitySet   OpacityMode = "set"
	OpacityPlus  OpacityMode = "plus"
	OpacityMinus OpacityMode = "minus"
)

// Opacity changes the view opacity.
type Opacity struct {
	Mode  OpacityMode
	Value float32
}

// Reload reloads the config file.
type Reload struct{}

// RenameWorkspace renames workspace Old to New.
type RenameWorkspace struct{ Old, New string }

// RenameFocusedWorkspace renames the focused workspace.
type RenameFocusedWorkspace struct{ New string }

// Axis is a resize dimension.
type Axis string

const (
	AxisWidth  Axis = "width"
	AxisHeight Axis = "height"
)

// ResizeGrow grows the container along an axis.
type ResizeGrow struct {
	Axis   Axis
	Amount Length
}

// ResizeShrink shrinks the container along an axis.
type ResizeShrink struct {
	Axis   Axis
	Amount Length
}

// ResizeSet sets the width, the height, or both. A zero amount leaves
// that axis unchanged.
type ResizeSet struct {
	Width  *Length
	Height *Length
}

// ScratchpadShow shows, or cycles through, scratchpad windows.
type ScratchpadShow struct{}

// ShortcutsInhibitor allows or forbids the view to inhibit shortcuts.
type ShortcutsInhibitor struct{ Enabled EnDisable }

// SplitMode is the argument of split.
type SplitMode string

const (
	SplitVertical   SplitMode = "vertical"
	SplitHorizontal SplitMode = "horizontal"
	SplitNone       SplitMode = "none"
	SplitToggle     SplitMode = "toggle"
)

// Split splits the container.
type Split struct{ Mode SplitMode }

// Sticky makes a floating container show on every workspace.
type Sticky struct{ State EnDisTog }

// SwapKey selects how Swap identifies the second container.
type SwapKey string

const (
	SwapByID    SwapKey = "id"
	SwapByConID SwapKey = "con_id"
	SwapByMark  SwapKey = "mark"
)

// Swap swaps two containers.
type Swap struct {
	By    SwapKey
	Value string
}

// TitleFormat sets the window title format (%title, %app_id, ...).
type TitleFormat struct{ Format string }

// Unmark removes a mark, or every mark when Name is empty.
type Unmark struct{ Name string }

// UrgentAction is the argument of urgent.
type UrgentAction string

const (
	UrgentEnable  UrgentAction = "enable"
	UrgentDisable UrgentAction = "disable"
	UrgentAllow   UrgentAction = "allow"
	UrgentDeny    UrgentAction = "deny"
)

// Urgent changes the urgency state of the view.
type Urgent struct{ Action UrgentAction }

func (Border) command()                 {}
func (Exit) command()                   {}
func (Floating) command()               {}
func (Focus) command()                  {}
func (FocusCycle) command()             {}
func (FocusOutput) command()            {}
func (Fullscreen) command()             {}
func (Gaps) command()                   {}
func (InhibitIdle) command()            {}
func (Kill) command()                   {}
func (Layout) command()                 {}
func (LayoutToggle) command()           {}
func (Mark) command()                   {}
func (MaxRenderTime) command()          {}
func (MoveDirection) command()          {}
func (MovePosition) command()           {}
func (MoveAbsolutePosition) command()   {}
func (MoveCenter) command()             {}
func (MoveCursor) command()             {}
func (MoveToMark) command()             {}
func (MoveToWorkspace) command()        {}
func (MoveToScratchpad) command()       {}
func (MoveToOutput) command()           {}
func (MoveWorkspaceToOutput) command()  {}
func (Nop) command()                    {}
func (Opacity) command()                {}
func (Reload) command()                 {}
func (RenameWorkspace) command()        {}
func (RenameFocusedWorkspace) command() {}
func (ResizeGrow) command()             {}
func (ResizeShrink) command()           {}
func (ResizeSet) command()              {}
func (ScratchpadShow) command()         {}
func (ShortcutsInhibitor) command()     {}
func (Split) command()                  {}
func (Sticky) command()                 {}
func (Swap) command()                   {}
func (TitleFormat) command()            {}
func (Unmark) command()                 {}
func (Urgent) command()                 {}

func (Border) subCommand()                 {}
func (Exit) subCommand()                   {}
func (Floating) subCommand()               {}
func (Focus) subCommand()                  {}
func (FocusCycle) subCommand()             {}
func (FocusOutput) subCommand()            {}
func (Fullscreen) subCommand()             {}
func (Gaps) subCommand()                   {}
func (InhibitIdle) subCommand()            {}
func (Kill) subCommand()                   {}
func (Layout) subCommand()                 {}
func (LayoutToggle) subCommand()           {}
func (Mark) subCommand()                   {}
func (MaxRenderTime) subCommand()          {}
func (MoveDirection) subCommand()          {}
func (MovePosition) subCommand()           {}
func (MoveAbsolutePosition) subCommand()   {}
func (MoveCenter) subCommand()             {}
func (MoveCursor) subCommand()             {}
func (MoveToMark) subCommand()             {}
func (MoveToWorkspace) subCommand()        {}
func (MoveToScratchpad) subCommand()       {}
func (MoveToOutput) subCommand()           {}
func (MoveWorkspaceToOutput) subCommand()  {}
func (Nop) subCommand()                    {}
func (Opacity) subCommand()                {}
func (Reload) subCommand()                 {}
func (RenameWorkspace) subCommand()        {}
func (RenameFocusedWorkspace) subCommand() {}
func (ResizeGrow) subCommand()             {}
func (ResizeShrink) subCommand()           {}
func (ResizeSet) subCommand()              {}
func (ScratchpadShow) subCommand()         {}
func (ShortcutsInhibitor) subCommand()     {}
func (Split) subCommand()                  {}
func (Sticky) subCommand()                 {}
func (Swap) subCommand()                   {}
func (TitleFormat) subCommand()            {}
func (Unmark) subCommand()                 {}
func (Urgent) subCommand()                 {}
