package sway

// Standalone is a command that selects no container: bindings, global
// settings and workspace switching.
//
// This is a sealed interface.
type Standalone interface {
	Command
	standalone()
}

// AssignWorkspace assigns windows matching the criteria to a workspace.
type AssignWorkspace struct {
	Criteria  *CriteriaGroup
	Workspace Workspace
}

// AssignOutput assigns windows matching the criteria to an output.
type AssignOutput struct {
	Criteria *CriteriaGroup
	Output   Output
}

// Bindsym binds a keysym combination to a command.
type Bindsym struct {
	Flags   BindFlags
	Key     SymKey
	Command Command
}

// Bindcode binds a keycode combination to a command.
type Bindcode struct {
	Flags   BindFlags
	Code    SymCode
	Command Command
}

// Bindswitch binds a switch state to a command.
type Bindswitch struct {
	Flags   BindswitchFlags
	Switch  Switch
	State   SwitchState
	Command Command
}

// Unbindsym removes a keysym binding.
type Unbindsym struct {
	Flags BindFlags
	Key   SymKey
}

// Unbindcode removes a keycode binding.
type Unbindcode struct {
	Flags BindFlags
	Code  SymCode
}

// Unbindswitch removes a switch binding.
type Unbindswitch struct {
	Switch Switch
	State  SwitchState
}

// ClientClass is the window state a client color rule applies to.
type ClientClass string

const (
	ClientFocused         ClientClass = "focused"
	ClientFocusedInactive ClientClass = "focused_inactive"
	ClientFocusedTabTitle ClientClass = "focused_tab_title"
	ClientPlaceholder     ClientClass = "placeholder"
	ClientUnfocused       ClientClass = "unfocused"
	ClientUrgent          ClientClass = "urgent"
)

// ClientColors configures the colors of a window class. ChildBorder is
// only rendered when Indicator is set.
type ClientColors struct {
	Class       ClientClass
	Border      Color
	Background  Color
	Text        Color
	Indicator   *Color
	ChildBorder *Color
}

// ClientBackground is accepted for i3 compatibility and ignored by sway.
type ClientBackground struct{ Color Color }

// DefaultBorderStyle is the style argument of default_border.
type DefaultBorderStyle string

const (
	DefaultBorderNone   DefaultBorderStyle = "none"
	DefaultBorderNormal DefaultBorderStyle = "normal"
	DefaultBorderPixel  DefaultBorderStyle = "pixel"
)

// DefaultBorder sets the border of new tiled windows.
type DefaultBorder struct {
	Style     DefaultBorderStyle
	Thickness *uint32
}

// DefaultFloatingBorder sets the border of new floating windows.
type DefaultFloatingBorder struct {
	Style     DefaultBorderStyle
	Thickness *uint32
}

// Exec runs a shell command.
type Exec struct{ Command string }

// ExecAlways runs a shell command, again on every reload.
type ExecAlways struct{ Command string }

// FloatingMaximumSize bounds floating windows. -1 removes the bound.
type FloatingMaximumSize struct{ Width, Height int32 }

// FloatingMinimumSize bounds floating windows from below.
type FloatingMinimumSize struct{ Width, Height int32 }

// FloatingModifierMode selects which mouse button resizes.
type FloatingModifierMode string

const (
	FloatingModifierNormal  FloatingModifierMode = "normal"
	FloatingModifierInverse FloatingModifierMode = "inverse"
)

// FloatingModifier sets the modifier used to drag floating windows
// ("none" disables it).
type FloatingModifier struct {
	Modifier string
	Mode     FloatingModifierMode
}

// MouseFocusMode is the argument of focus_follows_mouse.
type MouseFocusMode string

const (
	MouseFocusYes    MouseFocusMode = "yes"
	MouseFocusNo     MouseFocusMode = "no"
	MouseFocusAlways MouseFocusMode = "always"
)

// FocusFollowsMouse sets whether hovering focuses windows.
type FocusFollowsMouse struct{ Mode MouseFocusMode }

// ActivationMode is the argument of focus_on_window_activation.
type ActivationMode string

const (
	ActivationSmart  ActivationMode = "smart"
	ActivationUrgent ActivationMode = "urgent"
	ActivationFocus  ActivationMode = "focus"
	ActivationNone   ActivationMode = "none"
)

// FocusOnWindowActivation sets what an activation request does.
type FocusOnWindowActivation struct{ Mode ActivationMode }

// FocusWrappingMode is the argument of focus_wrapping.
type FocusWrappingMode string

const (
	FocusWrappingYes       FocusWrappingMode = "yes"
	FocusWrappingNo        FocusWrappingMode = "no"
	FocusWrappingForce     FocusWrappingMode = "force"
	FocusWrappingWorkspace FocusWrappingMode = "workspace"
)

// FocusWrapping sets how focus wraps at container edges.
type FocusWrapping struct{ Mode FocusWrappingMode }

// SetFont sets the title bar font.
type SetFont struct{ Font Font }

// ForceDisplayUrgencyHint keeps urgency visible for Msec after focus.
type ForceDisplayUrgencyHint struct{ Msec uint32 }

// TitlebarBorderThickness sets the title bar border thickness.
type TitlebarBorderThickness struct{ Thickness uint32 }

// TitlebarPadding sets title bar padding. Vertical defaults to
// Horizontal when nil.
type TitlebarPadding struct {
	Horizontal uint32
	Vertical   *uint32
}

// ForWindow runs Command for every window matching the criteria, now and
// when new ones appear.
type ForWindow struct {
	Criteria *CriteriaGroup
	Command  Command
}

// DefaultGaps sets the default gaps of every workspace.
type DefaultGaps struct {
	Direction GapsDirection
	Amount    uint32
}

// EdgeBordersMode is the argument of hide_edge_borders.
type EdgeBordersMode string

const (
	EdgeBordersNone        EdgeBordersMode = "none"
	EdgeBordersVertical    EdgeBordersMode = "vertical"
	EdgeBordersHorizontal  EdgeBordersMode = "horizontal"
	EdgeBordersBoth        EdgeBordersMode = "both"
	EdgeBordersSmart       EdgeBordersMode = "smart"
	EdgeBordersSmartNoGaps EdgeBordersMode = "smart_no_gaps"
)

// HideEdgeBorders hides borders adjacent to the screen edges. I3 enables
// i3's title bar hiding behavior.
type HideEdgeBorders struct {
	Mode EdgeBordersMode
	I3   bool
}

// Input passes a configuration to an input device. The arguments are
// rendered space-separated and unchecked.
type Input struct {
	Identifier string
	Args       []string
}

// Seat configures a seat.
type Seat struct {
	Name string
	Args []string
}

// OutputConfig configures an output.
type OutputConfig struct {
	Name string
	Args []string
}

// SmartBordersMode is the argument of smart_borders.
type SmartBordersMode string

const (
	SmartBordersOn     SmartBordersMode = "on"
	SmartBordersNoGaps SmartBordersMode = "no_gaps"
	SmartBordersOff    SmartBordersMode = "off"
)

// SmartBorders hides borders when there is only one window.
type SmartBorders struct{ Mode SmartBordersMode }

// SmartGapsMode is the argument of smart_gaps.
type SmartGapsMode string

const (
	SmartGapsOn           SmartGapsMode = "on"
	SmartGapsOff          SmartGapsMode = "off"
	SmartGapsToggle       SmartGapsMode = "toggle"
	SmartGapsInverseOuter SmartGapsMode = "inverse_outer"
)

// SmartGaps hides gaps when there is only one window.
type SmartGaps struct{ Mode SmartGapsMode }

// ModeSwitch switches to a binding mode.
type ModeSwitch struct{ Name string }

// ModeDefine declares a binding mode with its commands.
type ModeDefine struct {
	Name     string
	Pango    bool
	Commands []string
}

// MouseWarpingMode is the argument of mouse_warping.
type MouseWarpingMode string

const (
	MouseWarpingOutput    MouseWarpingMode = "output"
	MouseWarpingContainer MouseWarpingMode = "container"
	MouseWarpingNone      MouseWarpingMode = "none"
)

// MouseWarping sets when the pointer follows focus.
type MouseWarping struct{ Mode MouseWarpingMode }

// NoFocus keeps matching windows from taking focus when they appear.
type NoFocus struct{ Criteria *CriteriaGroup }

// PopupMode is the argument of popup_during_fullscreen.
type PopupMode string

const (
	PopupSmart           PopupMode = "smart"
	PopupIgnore          PopupMode = "ignore"
	PopupLeaveFullscreen PopupMode = "leave_fullscreen"
)

// PopupDuringFullscreen sets what popups do over fullscreen views.
type PopupDuringFullscreen struct{ Mode PopupMode }

// Set defines the variable $Name.
type Set struct{ Name, Value string }

// ShowMarks shows marks in title bars.
type ShowMarks struct{ Show YesNo }

// TilingDrag enables dragging tiled windows.
type TilingDrag struct{ State EnDisTog }

// TilingDragThreshold is the drag distance before a tiling drag starts.
type TilingDragThreshold struct{ Px uint32 }

// Alignment is the argument of title_align.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// TitleAlign aligns title bar text.
type TitleAlign struct{ Align Alignment }

// SwitchWorkspace switches to a workspace.
type SwitchWorkspace struct{ Workspace Workspace }

// WorkspaceGaps sets the gaps of one workspace.
type WorkspaceGaps struct {
	Name      WorkspaceName
	Direction GapsDirection
	Amount    uint32
}

// WorkspaceOutput pins a workspace to the first available output of
// Output followed by Fallbacks.
type WorkspaceOutput struct {
	Name      WorkspaceName
	Output    string
	Fallbacks []string
}

// WorkspaceAutoBackAndForth makes switching to the current workspace go
// back to the previous one.
type WorkspaceAutoBackAndForth struct{ Enabled YesNo }

func (AssignWorkspace) command()           {}
func (AssignOutput) command()              {}
func (Bindsym) command()                   {}
func (Bindcode) command()                  {}
func (Bindswitch) command()                {}
func (Unbindsym) command()                 {}
func (Unbindcode) command()                {}
func (Unbindswitch) command()              {}
func (ClientColors) command()              {}
func (ClientBackground) command()          {}
func (DefaultBorder) command()             {}
func (DefaultFloatingBorder) command()     {}
func (Exec) command()                      {}
func (ExecAlways) command()                {}
func (FloatingMaximumSize) command()       {}
func (FloatingMinimumSize) command()       {}
func (FloatingModifier) command()          {}
func (FocusFollowsMouse) command()         {}
func (FocusOnWindowActivation) command()   {}
func (FocusWrapping) command()             {}
func (SetFont) command()                   {}
func (ForceDisplayUrgencyHint) command()   {}
func (TitlebarBorderThickness) command()   {}
func (TitlebarPadding) command()           {}
func (ForWindow) command()                 {}
func (DefaultGaps) command()               {}
func (HideEdgeBorders) command()           {}
func (Input) command()                     {}
func (Seat) command()                      {}
func (OutputConfig) command()              {}
func (SmartBorders) command()              {}
func (SmartGaps) command()                 {}
func (ModeSwitch) command()                {}
func (ModeDefine) command()                {}
func (MouseWarping) command()              {}
func (NoFocus) command()                   {}
func (PopupDuringFullscreen) command()     {}
func (Set) command()                       {}
func (ShowMarks) command()                 {}
func (TilingDrag) command()                {}
func (TilingDragThreshold) command()       {}
func (TitleAlign) command()                {}
func (SwitchWorkspace) command()           {}
func (WorkspaceGaps) command()             {}
func (WorkspaceOutput) command()           {}
func (WorkspaceAutoBackAndForth) command() {}

func (AssignWorkspace) standalone()           {}
func (AssignOutput) standalone()              {}
func (Bindsym) standalone()                   {}
func (Bindcode) standalone()                  {}
func (Bindswitch) standalone()                {}
func (Unbindsym) standalone()                 {}
func (Unbindcode) standalone()                {}
func (Unbindswitch) standalone()              {}
func (ClientColors) standalone()              {}
func (ClientBackground) standalone()          {}
func (DefaultBorder) standalone()             {}
func (DefaultFloatingBorder) standalone()     {}
func (Exec) standalone()                      {}
func (ExecAlways) standalone()                {}
func (FloatingMaximumSize) standalone()       {}
func (FloatingMinimumSize) standalone()       {}
func (FloatingModifier) standalone()          {}
func (FocusFollowsMouse) standalone()         {}
func (FocusOnWindowActivation) standalone()   {}
func (FocusWrapping) standalone()             {}
func (SetFont) standalone()                   {}
func (ForceDisplayUrgencyHint) standalone()   {}
func (TitlebarBorderThickness) standalone()   {}
func (TitlebarPadding) standalone()           {}
func (ForWindow) standalone()                 {}
func (DefaultGaps) standalone()               {}
func (HideEdgeBorders) standalone()           {}
func (Input) standalone()                     {}
func (Seat) standalone()                      {}
func (OutputConfig) standalone()              {}
func (SmartBorders) standalone()              {}
func (SmartGaps) standalone()                 {}
func (ModeSwitch) standalone()                {}
func (ModeDefine) standalone()                {}
func (MouseWarping) standalone()              {}
func (NoFocus) standalone()                   {}
func (PopupDuringFullscreen) standalone()     {}
func (Set) standalone()                       {}
func (ShowMarks) standalone()                 {}
func (TilingDrag) standalone()                {}
func (TilingDragThreshold) standalone()       {}
func (TitleAlign) standalone()                {}
func (SwitchWorkspace) standalone()           {}
func (WorkspaceGaps) standalone()             {}
func (WorkspaceOutput) standalone()           {}
func (WorkspaceAutoBackAndForth) standalone() {}
