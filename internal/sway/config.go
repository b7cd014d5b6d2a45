package sway

// The commands in this file are only valid in the config file; sway
// rejects them over IPC.

// Bar opens a bar block. Args are bar subcommands, rendered unchecked.
type Bar struct {
	ID   string
	Args []string
}

// OrientationMode is the argument of default_orientation.
type OrientationMode string

const (
	OrientationHorizontal OrientationMode = "horizontal"
	OrientationVertical   OrientationMode = "vertical"
	OrientationAuto       OrientationMode = "auto"
)

// DefaultOrientation sets the default layout of tiled containers.
type DefaultOrientation struct{ Mode OrientationMode }

// Include includes another config file. Shell syntax in Path is expanded
// by sway.
type Include struct{ Path string }

// SwaybgCommand sets the background command; "-" disables it.
type SwaybgCommand struct{ Command string }

// SwaynagCommand sets the swaynag command; "-" disables it.
type SwaynagCommand struct{ Command string }

// WorkspaceLayoutMode is the argument of workspace_layout.
type WorkspaceLayoutMode string

const (
	WorkspaceLayoutDefault  WorkspaceLayoutMode = "default"
	WorkspaceLayoutStacking WorkspaceLayoutMode = "stacking"
	WorkspaceLayoutTabbed   WorkspaceLayoutMode = "tabbed"
)

// WorkspaceLayout sets the initial layout of new workspaces.
type WorkspaceLayout struct{ Mode WorkspaceLayoutMode }

// XwaylandMode is the argument of xwayland.
type XwaylandMode string

const (
	XwaylandEnable  XwaylandMode = "enable"
	XwaylandDisable XwaylandMode = "disable"
	XwaylandForce   XwaylandMode = "force"
)

// Xwayland enables, disables or force-starts Xwayland.
type Xwayland struct{ Mode XwaylandMode }

func (Bar) command()                {}
func (DefaultOrientation) command() {}
func (Include) command()            {}
func (SwaybgCommand) command()      {}
func (SwaynagCommand) command()     {}
func (WorkspaceLayout) command()    {}
func (Xwayland) command()           {}

func (Bar) standalone()                {}
func (DefaultOrientation) standalone() {}
func (Include) standalone()            {}
func (SwaybgCommand) standalone()      {}
func (SwaynagCommand) standalone()     {}
func (WorkspaceLayout) standalone()    {}
func (Xwayland) standalone()           {}
