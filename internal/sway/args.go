package sway

import "fmt"

// EnDisTog is the enable/disable/toggle argument shared by floating,
// sticky, fullscreen and tiling_drag.
type EnDisTog string

const (
	Enable  EnDisTog = "enable"
	Disable EnDisTog = "disable"
	Toggle  EnDisTog = "toggle"
)

// EnDisable renders as "enable" when true and "disable" otherwise.
type EnDisable bool

func (e EnDisable) String() string {
	if e {
		return "enable"
	}
	return "disable"
}

// YesNo renders as "yes" when true and "no" otherwise.
type YesNo bool

func (y YesNo) String() string {
	if y {
		return "yes"
	}
	return "no"
}

// Direction is a cardinal direction for focus and move.
type Direction string

const (
	Up    Direction = "up"
	Right Direction = "right"
	Down  Direction = "down"
	Left  Direction = "left"
)

// Output names an output or a direction relative to the focused one.
// Any other string is taken as an output name.
type Output string

const (
	OutputUp      Output = "up"
	OutputRight   Output = "right"
	OutputDown    Output = "down"
	OutputLeft    Output = "left"
	OutputCurrent Output = "current"
)

// LengthUnit selects the unit a Length renders with. The empty unit lets
// sway pick px for floating and ppt for tiled containers.
type LengthUnit string

const (
	UnitDefault LengthUnit = ""
	UnitPx      LengthUnit = "px"
	UnitPpt     LengthUnit = "ppt"
)

// Length is an amount with an optional unit: "10 px", "10 ppt" or "10".
type Length struct {
	Amount uint32
	Unit   LengthUnit
}

// Px returns a length in pixels.
func Px(n uint32) Length { return Length{Amount: n, Unit: UnitPx} }

// Ppt returns a length in percentage points.
func Ppt(n uint32) Length { return Length{Amount: n, Unit: UnitPpt} }

// Amount returns a length without a unit.
func Amount(n uint32) Length { return Length{Amount: n} }

func (l Length) String() string {
	if l.Unit == UnitDefault {
		return u32(l.Amount)
	}
	return u32(l.Amount) + " " + string(l.Unit)
}

// Color is an sRGB color with optional alpha.
type Color struct {
	red, green, blue uint8
	alpha            uint8
	hasAlpha         bool
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{red: r, green: g, blue: b}
}

// RGBA returns a color with an explicit alpha byte.
func RGBA(r, g, b, a uint8) Color {
	return Color{red: r, green: g, blue: b, alpha: a, hasAlpha: true}
}

// String renders #RRGGBB or #RRGGBBAA with uppercase digits.
func (c Color) String() string {
	if c.hasAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.red, c.green, c.blue, c.alpha)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.red, c.green, c.blue)
}

// WorkspaceName is a workspace name, optionally prefixed with a number
// ("1:web").
type WorkspaceName struct {
	name     string
	number   uint32
	numbered bool
}

// Named returns a plain workspace name.
func Named(name string) WorkspaceName {
	return WorkspaceName{name: name}
}

// Numbered returns a name rendered as "<n>:<name>".
func Numbered(n uint32, name string) WorkspaceName {
	return WorkspaceName{name: name, number: n, numbered: true}
}

func (w WorkspaceName) String() string {
	if w.numbered {
		return u32(w.number) + ":" + w.name
	}
	return w.name
}

// Workspace is the target of workspace and move-to-workspace commands.
type Workspace struct {
	keyword string
	name    *WorkspaceName
}

var (
	WorkspacePrev         = Workspace{keyword: "prev"}
	WorkspaceNext         = Workspace{keyword: "next"}
	WorkspaceCurrent      = Workspace{keyword: "current"}
	WorkspacePrevOnOutput = Workspace{keyword: "prev_on_output"}
	WorkspaceNextOnOutput = Workspace{keyword: "next_on_output"}
	WorkspaceBackAndForth = Workspace{keyword: "back_and_forth"}
)

// WorkspaceByName targets the workspace with the given name.
func WorkspaceByName(name WorkspaceName) Workspace {
	return Workspace{name: &name}
}

// WorkspaceByNumber targets a workspace by its number, matching it even
// when its name differs.
func WorkspaceByNumber(name WorkspaceName) Workspace {
	return Workspace{keyword: "number", name: &name}
}

func (w Workspace) String() string {
	switch {
	case w.name == nil:
		return w.keyword
	case w.keyword == "":
		return w.name.String()
	default:
		return w.keyword + " " + w.name.String()
	}
}

// GapsDirection selects which gaps a gaps command changes.
type GapsDirection string

const (
	GapsInner      GapsDirection = "inner"
	GapsOuter      GapsDirection = "outer"
	GapsHorizontal GapsDirection = "horizontal"
	GapsVertical   GapsDirection = "vertical"
	GapsTop        GapsDirection = "top"
	GapsRight      GapsDirection = "right"
	GapsBottom     GapsDirection = "bottom"
	GapsLeft       GapsDirection = "left"
)

// GapsScope is "all" workspaces or the "current" one.
type GapsScope string

const (
	GapsAll     GapsScope = "all"
	GapsCurrent GapsScope = "current"
)

// Adjust is how a runtime gaps command applies its amount.
type Adjust string

const (
	AdjustSet    Adjust = "set"
	AdjustPlus   Adjust = "plus"
	AdjustMinus  Adjust = "minus"
	AdjustToggle Adjust = "toggle"
)

// Modifiers is the modifier prefix of a key binding. Set modifiers render
// in the fixed order Mod1+ Mod2+ Mod3+ Mod4+ Shift+ Control+.
type Modifiers struct {
	Mod1    bool
	Mod2    bool
	Mod3    bool
	Mod4    bool
	Shift   bool
	Control bool
}

func (m Modifiers) String() string {
	return when(m.Mod1, "Mod1+") +
		when(m.Mod2, "Mod2+") +
		when(m.Mod3, "Mod3+") +
		when(m.Mod4, "Mod4+") +
		when(m.Shift, "Shift+") +
		when(m.Control, "Control+")
}

// Group is the optional XKB layout group prefix of a bindsym key.
type Group string

const (
	GroupNone Group = ""
	Group1    Group = "Group1+"
	Group2    Group = "Group2+"
	Group3    Group = "Group3+"
	Group4    Group = "Group4+"
)

// BindFlags are the options of bindsym, bindcode and their unbind forms.
// Each flag keeps its position when unset.
type BindFlags struct {
	WholeWindow     bool
	Border          bool
	ExcludeTitleBar bool
	Release         bool
	Locked          bool
	ToCode          bool
	InputDevice     string
	NoWarn          bool
	NoRepeat        bool
	Inhibited       bool
}

func (f BindFlags) String() string {
	device := ""
	if f.InputDevice != "" {
		device = "--input-device=" + f.InputDevice
	}
	return when(f.WholeWindow, "--whole-window") + " " +
		when(f.Border, "--border") + " " +
		when(f.ExcludeTitleBar, "--exclude-title-bar") + " " +
		when(f.Release, "--release") + " " +
		when(f.Locked, "--locked") + " " +
		when(f.ToCode, "--to-code") + " " +
		device + " " +
		when(f.NoWarn, "--no-warn") + " " +
		when(f.NoRepeat, "--no-repeat") + " " +
		when(f.Inhibited, "--inhibited")
}

// SymKey is a keysym combination such as Mod4+Shift+q.
type SymKey struct {
	Group     Group
	Modifiers Modifiers
	Key       string
}

// Key returns a SymKey without modifiers.
func Key(key string) SymKey {
	return SymKey{Key: key}
}

func (k SymKey) String() string {
	return string(k.Group) + k.Modifiers.String() + k.Key
}

// SymCode is a keycode combination such as Mod4+24.
type SymCode struct {
	Modifiers Modifiers
	Code      uint32
}

func (k SymCode) String() string {
	return k.Modifiers.String() + u32(k.Code)
}

// BindswitchFlags are the options of bindswitch.
type BindswitchFlags struct {
	Locked bool
	NoWarn bool
	Reload bool
}

func (f BindswitchFlags) String() string {
	return when(f.Locked, "--locked") + " " +
		when(f.NoWarn, "--no-warn") + " " +
		when(f.Reload, "--reload")
}

// Switch is a hardware switch for bindswitch.
type Switch string

const (
	SwitchLid    Switch = "lid"
	SwitchTablet Switch = "tablet"
)

// SwitchState is the switch state a binding fires on.
type SwitchState string

const (
	SwitchOn     SwitchState = "on"
	SwitchOff    SwitchState = "off"
	SwitchToggle SwitchState = "toggle"
)
