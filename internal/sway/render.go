package sway

// Every switch in this file covers its whole sealed family. The default
// branches only see pointers to variants, which render like the variant,
// and nil pointers, which render empty.

func renderCommand(c Command) string {
	switch c := c.(type) {
	case nil:
		return ""
	case *Targeted:
		if c == nil {
			return ""
		}
		return c.String()
	case Raw:
		return string(c)
	case SubCommand:
		return renderSubCommand(c)
	case Standalone:
		return renderStandalone(c)
	default:
		if inner, ok := deref(c); ok {
			return renderCommand(inner)
		}
		return ""
	}
}

func renderCriterion(c Criterion) string {
	switch c := c.(type) {
	case nil:
		return ""
	case MatchAppID:
		return quoted("app_id", c.Value.String())
	case MatchClass:
		return quoted("class", c.Value.String())
	case MatchConID:
		return quoted("con_id", c.Value.String())
	case MatchConMark:
		return quoted("con_mark", c.Mark)
	case MatchFloating:
		return "floating"
	case MatchID:
		return quoted("id", u32(c.ID))
	case MatchInstance:
		return quoted("instance", c.Value.String())
	case MatchPID:
		return quoted("pid", u32(c.PID))
	case MatchShell:
		return quoted("shell", c.Value.String())
	case MatchTiling:
		return "tiling"
	case MatchTitle:
		return quoted("title", c.Value.String())
	case MatchUrgent:
		return quoted("urgent", string(c.Which))
	case MatchWindowRole:
		return quoted("window_role", c.Value.String())
	case MatchWindowType:
		return quoted("window_type", string(c.Type))
	case MatchWorkspace:
		return quoted("workspace", c.Value.String())
	default:
		if inner, ok := deref(c); ok {
			return renderCriterion(inner)
		}
		return ""
	}
}

func quoted(kind, value string) string {
	return kind + `="` + value + `"`
}

func renderSubCommand(s SubCommand) string {
	switch s := s.(type) {
	case nil:
		return ""
	case Border:
		return "border " + borderStyle(string(s.Style), s.Thickness)
	case Exit:
		return "exit"
	case Floating:
		return "floating " + string(s.State)
	case Focus:
		return "focus " + string(s.Target)
	case FocusCycle:
		dir := "prev"
		if s.Next {
			dir = "next"
		}
		return "focus " + dir + " " + when(s.Sibling, "sibling")
	case FocusOutput:
		return "focus output " + string(s.Output)
	case Fullscreen:
		return "fullscreen " + string(s.State) + " " + when(s.Global, "global")
	case Gaps:
		return "gaps " + string(s.Direction) + " " + string(s.Scope) + " " + string(s.Adjust) + " " + u32(s.Amount)
	case InhibitIdle:
		return "inhibit_idle " + string(s.Mode)
	case Kill:
		return "kill"
	case Layout:
		return "layout " + string(s.Mode)
	case LayoutToggle:
		return "layout toggle " + joinAs(s.Modes, " ", func(m ToggleMode) string { return string(m) })
	case Mark:
		return "mark " + string(s.Mode) + " " + s.Name
	case MaxRenderTime:
		if s.Msec == 0 {
			return "max_render_time off"
		}
		return "max_render_time " + u32(s.Msec)
	case MoveDirection:
		return "move " + string(s.Direction) + " " + i32(s.Px) + " px"
	case MovePosition:
		return "move position " + s.X.String() + " " + s.Y.String()
	case MoveAbsolutePosition:
		return "move absolute position " + u32(s.X) + " px " + u32(s.Y) + " px"
	case MoveCenter:
		return "move " + when(s.Absolute, "absolute ") + "position center"
	case MoveCursor:
		return "move position cursor"
	case MoveToMark:
		return "move container to mark " + s.Mark
	case MoveToWorkspace:
		return "move " + when(s.NoAutoBackAndForth, "--no-auto-back-and-forth ") + "container to workspace " + s.Workspace.String()
	case MoveToScratchpad:
		return "move container to scratchpad"
	case MoveToOutput:
		return "move container to output " + string(s.Output)
	case MoveWorkspaceToOutput:
		return "move workspace to output " + string(s.Output)
	case Nop:
		return "nop " + s.Comment
	case Opacity:
		return "opacity " + string(s.Mode) + " " + f32(s.Value)
	case Reload:
		return "reload"
	case RenameWorkspace:
		return "rename workspace " + s.Old + " to " + s.New
	case RenameFocusedWorkspace:
		return "rename workspace to " + s.New
	case ResizeGrow:
		return "resize grow " + string(s.Axis) + " " + s.Amount.String()
	case ResizeShrink:
		return "resize shrink " + string(s.Axis) + " " + s.Amount.String()
	case ResizeSet:
		out := "resize set"
		if s.Width != nil {
			out += " width " + s.Width.String()
		}
		if s.Height != nil {
			out += " height " + s.Height.String()
		}
		return out
	case ScratchpadShow:
		return "scratchpad show"
	case ShortcutsInhibitor:
		return "shortcuts_inhibitor " + s.Enabled.String()
	case Split:
		return "split " + string(s.Mode)
	case Sticky:
		return "sticky " + string(s.State)
	case Swap:
		return "swap container with " + string(s.By) + " " + s.Value
	case TitleFormat:
		return "title_format " + s.Format
	case Unmark:
		return "unmark " + s.Name
	case Urgent:
		return "urgent " + string(s.Action)
	default:
		if inner, ok := deref(s); ok {
			return renderSubCommand(inner)
		}
		return ""
	}
}

// borderStyle renders a border style; normal and pixel always carry the
// thickness position.
func borderStyle(style string, thickness *uint32) string {
	switch style {
	case string(BorderNormal), string(BorderPixel):
		return style + " " + optU32(thickness)
	default:
		return style
	}
}

func renderStandalone(s Standalone) string {
	switch s := s.(type) {
	case nil:
		return ""
	case AssignWorkspace:
		return "assign " + groupText(s.Criteria) + " → workspace " + s.Workspace.String()
	case AssignOutput:
		return "assign " + groupText(s.Criteria) + " → output " + string(s.Output)
	case Bindsym:
		return "bindsym " + s.Flags.String() + " " + s.Key.String() + " " + renderCommand(s.Command)
	case Bindcode:
		return "bindcode " + s.Flags.String() + " " + s.Code.String() + " " + renderCommand(s.Command)
	case Bindswitch:
		return "bindswitch " + s.Flags.String() + " " + string(s.Switch) + ":" + string(s.State) + " " + renderCommand(s.Command)
	case Unbindsym:
		return "unbindsym " + s.Flags.String() + " " + s.Key.String()
	case Unbindcode:
		return "unbindcode " + s.Flags.String() + " " + s.Code.String()
	case Unbindswitch:
		return "unbindswitch " + string(s.Switch) + ":" + string(s.State)
	case ClientColors:
		indicator, child := "", ""
		if s.Indicator != nil {
			indicator = s.Indicator.String()
			if s.ChildBorder != nil {
				child = s.ChildBorder.String()
			}
		}
		return "client." + string(s.Class) + " " + s.Border.String() + " " + s.Background.String() + " " +
			s.Text.String() + " " + indicator + " " + child
	case ClientBackground:
		return "client.background " + s.Color.String()
	case DefaultBorder:
		return "default_border " + borderStyle(string(s.Style), s.Thickness)
	case DefaultFloatingBorder:
		return "default_floating_border " + borderStyle(string(s.Style), s.Thickness)
	case Exec:
		return "exec " + s.Command
	case ExecAlways:
		return "exec_always " + s.Command
	case FloatingMaximumSize:
		return "floating_maximum_size " + i32(s.Width) + " x " + i32(s.Height)
	case FloatingMinimumSize:
		return "floating_minimum_size " + i32(s.Width) + " x " + i32(s.Height)
	case FloatingModifier:
		return "floating_modifier " + s.Modifier + " " + string(s.Mode)
	case FocusFollowsMouse:
		return "focus_follows_mouse " + string(s.Mode)
	case FocusOnWindowActivation:
		return "focus_on_window_activation " + string(s.Mode)
	case FocusWrapping:
		return "focus_wrapping " + string(s.Mode)
	case SetFont:
		return "font " + s.Font.String()
	case ForceDisplayUrgencyHint:
		return "force_display_urgency_hint " + u32(s.Msec) + " ms"
	case TitlebarBorderThickness:
		return "titlebar_border_thickness " + u32(s.Thickness)
	case TitlebarPadding:
		return "titlebar_padding " + u32(s.Horizontal) + " " + optU32(s.Vertical)
	case ForWindow:
		return "for_window " + groupText(s.Criteria) + " " + renderCommand(s.Command)
	case DefaultGaps:
		return "gaps " + string(s.Direction) + " " + u32(s.Amount)
	case HideEdgeBorders:
		return "hide_edge_borders " + when(s.I3, "--i3 ") + string(s.Mode)
	case Input:
		return "input " + s.Identifier + " " + words(s.Args)
	case Seat:
		return "seat " + s.Name + " " + words(s.Args)
	case OutputConfig:
		return "output " + s.Name + " " + words(s.Args)
	case SmartBorders:
		return "smart_borders " + string(s.Mode)
	case SmartGaps:
		return "smart_gaps " + string(s.Mode)
	case ModeSwitch:
		return "mode " + s.Name
	case ModeDefine:
		return "mode " + when(s.Pango, "--pango_markup ") + s.Name + " " + words(s.Commands)
	case MouseWarping:
		return "mouse_warping " + string(s.Mode)
	case NoFocus:
		return "no_focus " + groupText(s.Criteria)
	case PopupDuringFullscreen:
		return "popup_during_fullscreen " + string(s.Mode)
	case Set:
		return "set $" + s.Name + " " + s.Value
	case ShowMarks:
		return "show_marks " + s.Show.String()
	case TilingDrag:
		return "tiling_drag " + string(s.State)
	case TilingDragThreshold:
		return "tiling_drag_threshold " + u32(s.Px)
	case TitleAlign:
		return "title_align " + string(s.Align)
	case SwitchWorkspace:
		return "workspace " + s.Workspace.String()
	case WorkspaceGaps:
		return "workspace " + s.Name.String() + " gaps " + string(s.Direction) + " " + u32(s.Amount)
	case WorkspaceOutput:
		return "workspace " + s.Name.String() + " output " + words(append([]string{s.Output}, s.Fallbacks...))
	case WorkspaceAutoBackAndForth:
		return "workspace_auto_back_and_forth " + s.Enabled.String()
	case Bar:
		return "bar " + s.ID + " " + words(s.Args)
	case DefaultOrientation:
		return "default_orientation " + string(s.Mode)
	case Include:
		return "include " + s.Path
	case SwaybgCommand:
		return "swaybg_command " + s.Command
	case SwaynagCommand:
		return "swaynag_command " + s.Command
	case WorkspaceLayout:
		return "workspace_layout " + string(s.Mode)
	case Xwayland:
		return "xwayland " + string(s.Mode)
	default:
		if inner, ok := deref(s); ok {
			return renderStandalone(inner)
		}
		return ""
	}
}

func groupText(g *CriteriaGroup) string {
	if g == nil {
		return ""
	}
	return g.String()
}

func words(items []string) string {
	return joinAs(items, " ", func(s string) string { return s })
}
