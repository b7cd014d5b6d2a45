package recipe

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/swaycmd/internal/sway"
)

// Compile builds the command list of r. Targeted units receive their
// criteria before their sub-commands, so no unit is rebuilt.
func Compile(r *Recipe) (*sway.List, error) {
	if err := validateRecipe(r); err != nil {
		return nil, err
	}

	list := new(sway.List)
	for i, e := range r.Commands {
		cmd, err := compileEntry(e, fmt.Sprintf("commands[%d]", i))
		if err != nil {
			return nil, err
		}
		list.Add(cmd)
	}
	return list, nil
}

func compileEntry(e Entry, field string) (sway.Command, error) {
	keys := setKeys(e, "criteria")
	if len(keys) != 1 {
		return nil, exactlyOne(field, keys)
	}
	if e.Criteria != nil && e.Do == nil {
		return nil, fieldErr(field+".criteria", "criteria is only allowed together with do")
	}

	switch {
	case e.Raw != nil:
		return sway.Raw(*e.Raw), nil
	case e.Do != nil:
		return compileUnit(e.Criteria, e.Do, field)
	case e.Exec != nil:
		return sway.Exec{Command: *e.Exec}, nil
	case e.ExecAlways != nil:
		return sway.ExecAlways{Command: *e.ExecAlways}, nil
	case e.Workspace != nil:
		return sway.SwitchWorkspace{Workspace: workspace(*e.Workspace)}, nil
	case e.Set != nil:
		if e.Set.Name == "" {
			return nil, fieldErr(field+".set.name", "name is required")
		}
		return sway.Set{Name: strings.TrimPrefix(e.Set.Name, "$"), Value: e.Set.Value}, nil
	case e.Bindsym != nil:
		return compileBinding(*e.Bindsym, field+".bindsym")
	case e.ForWindow != nil:
		return compileWindowRule(*e.ForWindow, field+".for_window")
	default:
		return sway.Include{Path: *e.Include}, nil
	}
}

// compileUnit builds a targeted unit, criteria first.
func compileUnit(criteria []Criterion, steps []Step, field string) (*sway.Targeted, error) {
	if len(steps) == 0 {
		return nil, fieldErr(field+".do", "at least one step is required")
	}

	var unit *sway.Targeted
	for i, c := range criteria {
		mc, err := compileCriterion(c, fmt.Sprintf("%s.criteria[%d]", field, i))
		if err != nil {
			return nil, err
		}
		if unit == nil {
			unit = sway.Select(mc)
		} else {
			unit.Where(mc)
		}
	}
	for i, s := range steps {
		sub, err := compileStep(s, fmt.Sprintf("%s.do[%d]", field, i))
		if err != nil {
			return nil, err
		}
		if unit == nil {
			unit = sway.NewTargeted(sub)
		} else {
			unit.Do(sub)
		}
	}
	return unit, nil
}

func compileGroup(criteria []Criterion, field string) (*sway.CriteriaGroup, error) {
	if len(criteria) == 0 {
		return nil, fieldErr(field, "at least one criterion is required")
	}
	var group *sway.CriteriaGroup
	for i, c := range criteria {
		mc, err := compileCriterion(c, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		if group == nil {
			group = sway.NewCriteriaGroup(mc)
		} else {
			group.Add(mc)
		}
	}
	return group, nil
}

func compileBinding(b Binding, field string) (sway.Command, error) {
	if b.Key == "" {
		return nil, fieldErr(field+".key", "key is required")
	}

	var mods sway.Modifiers
	for i, m := range b.Modifiers {
		switch strings.ToLower(m) {
		case "mod1", "alt":
			mods.Mod1 = true
		case "mod2":
			mods.Mod2 = true
		case "mod3":
			mods.Mod3 = true
		case "mod4", "super":
			mods.Mod4 = true
		case "shift":
			mods.Shift = true
		case "control", "ctrl":
			mods.Control = true
		default:
			return nil, fieldErr(fmt.Sprintf("%s.modifiers[%d]", field, i), "unknown modifier %q", m)
		}
	}

	flags, err := bindFlags(b.Flags, field+".flags")
	if err != nil {
		return nil, err
	}

	unit, err := compileUnit(b.Criteria, b.Do, field)
	if err != nil {
		return nil, err
	}

	return sway.Bindsym{
		Flags:   flags,
		Key:     sway.SymKey{Modifiers: mods, Key: b.Key},
		Command: unit,
	}, nil
}

func bindFlags(names []string, field string) (sway.BindFlags, error) {
	var f sway.BindFlags
	for i, name := range names {
		switch name = strings.TrimPrefix(name, "--"); {
		case name == "whole-window":
			f.WholeWindow = true
		case name == "border":
			f.Border = true
		case name == "exclude-title-bar":
			f.ExcludeTitleBar = true
		case name == "release":
			f.Release = true
		case name == "locked":
			f.Locked = true
		case name == "to-code":
			f.ToCode = true
		case strings.HasPrefix(name, "input-device="):
			f.InputDevice = strings.TrimPrefix(name, "input-device=")
		case name == "no-warn":
			f.NoWarn = true
		case name == "no-repeat":
			f.NoRepeat = true
		case name == "inhibited":
			f.Inhibited = true
		default:
			return f, fieldErr(fmt.Sprintf("%s[%d]", field, i), "unknown bindsym flag %q", name)
		}
	}
	return f, nil
}

func compileWindowRule(w WindowRule, field string) (sway.Command, error) {
	group, err := compileGroup(w.Criteria, field+".criteria")
	if err != nil {
		return nil, err
	}
	unit, err := compileUnit(nil, w.Do, field)
	if err != nil {
		return nil, err
	}
	return sway.ForWindow{Criteria: group, Command: unit}, nil
}

func compileCriterion(c Criterion, field string) (sway.Criterion, error) {
	keys := setKeys(c)
	if len(keys) != 1 {
		return nil, exactlyOne(field, keys)
	}
	field += "." + keys[0]

	switch {
	case c.AppID != nil:
		return sway.MatchAppID{Value: orFocused(*c.AppID)}, nil
	case c.Class != nil:
		return sway.MatchClass{Value: orFocused(*c.Class)}, nil
	case c.ConID != nil:
		if *c.ConID == sway.FocusedToken {
			return sway.MatchConID{Value: sway.Focused[uint32]()}, nil
		}
		id, err := strconv.ParseUint(*c.ConID, 10, 32)
		if err != nil {
			return nil, fieldErr(field, "con_id must be a number or %s", sway.FocusedToken)
		}
		return sway.ConID(uint32(id)), nil
	case c.ConMark != nil:
		return sway.MatchConMark{Mark: *c.ConMark}, nil
	case c.Floating != nil:
		if !*c.Floating {
			return nil, fieldErr(field, "floating can only be true")
		}
		return sway.MatchFloating{}, nil
	case c.ID != nil:
		return sway.MatchID{ID: *c.ID}, nil
	case c.Instance != nil:
		return sway.MatchInstance{Value: orFocused(*c.Instance)}, nil
	case c.PID != nil:
		return sway.MatchPID{PID: *c.PID}, nil
	case c.Shell != nil:
		return sway.MatchShell{Value: orFocused(*c.Shell)}, nil
	case c.Tiling != nil:
		if !*c.Tiling {
			return nil, fieldErr(field, "tiling can only be true")
		}
		return sway.MatchTiling{}, nil
	case c.Title != nil:
		return sway.MatchTitle{Value: orFocused(*c.Title)}, nil
	case c.Urgent != nil:
		u, err := oneOf(field, *c.Urgent,
			sway.UrgentFirst, sway.UrgentLast, sway.UrgentLatest,
			sway.UrgentNewest, sway.UrgentOldest, sway.UrgentRecent)
		if err != nil {
			return nil, err
		}
		return sway.MatchUrgent{Which: u}, nil
	case c.WindowRole != nil:
		return sway.MatchWindowRole{Value: orFocused(*c.WindowRole)}, nil
	case c.WindowType != nil:
		wt, err := oneOf(field, *c.WindowType,
			sway.WindowNormal, sway.WindowDialog, sway.WindowUtility, sway.WindowToolbar,
			sway.WindowSplash, sway.WindowMenu, sway.WindowDropdownMenu, sway.WindowPopupMenu,
			sway.WindowTooltip, sway.WindowNotification)
		if err != nil {
			return nil, err
		}
		return sway.MatchWindowType{Type: wt}, nil
	default:
		return sway.MatchWorkspace{Value: orFocused(*c.Workspace)}, nil
	}
}

func orFocused(s string) sway.OrFocused[string] {
	if s == sway.FocusedToken {
		return sway.Focused[string]()
	}
	return sway.Value(s)
}

func compileStep(s Step, field string) (sway.SubCommand, error) {
	keys := setKeys(s)
	if len(keys) != 1 {
		return nil, exactlyOne(field, keys)
	}
	field += "." + keys[0]

	switch {
	case s.Exit != nil:
		return flagStep(*s.Exit, field, sway.Exit{})
	case s.Reload != nil:
		return flagStep(*s.Reload, field, sway.Reload{})
	case s.Kill != nil:
		return flagStep(*s.Kill, field, sway.Kill{})
	case s.ScratchpadShow != nil:
		return flagStep(*s.ScratchpadShow, field, sway.ScratchpadShow{})
	case s.Floating != nil:
		state, err := enDisTog(field, *s.Floating)
		return sway.Floating{State: state}, err
	case s.Sticky != nil:
		state, err := enDisTog(field, *s.Sticky)
		return sway.Sticky{State: state}, err
	case s.Fullscreen != nil:
		state, err := enDisTog(field, *s.Fullscreen)
		return sway.Fullscreen{State: state}, err
	case s.Border != nil:
		style, err := oneOf(field+".style", s.Border.Style,
			sway.BorderNone, sway.BorderNormal, sway.BorderCSD, sway.BorderPixel, sway.BorderToggle)
		if err != nil {
			return nil, err
		}
		return sway.Border{Style: style, Thickness: s.Border.Width}, nil
	case s.Focus != nil:
		return focusStep(*s.Focus, field)
	case s.Layout != nil:
		return layoutStep(*s.Layout, field)
	case s.Split != nil:
		mode, err := oneOf(field, *s.Split,
			sway.SplitVertical, sway.SplitHorizontal, sway.SplitNone, sway.SplitToggle)
		return sway.Split{Mode: mode}, err
	case s.Move != nil:
		return moveStep(*s.Move, field)
	case s.Resize != nil:
		return resizeStep(*s.Resize, field)
	case s.Mark != nil:
		return sway.Mark{Name: *s.Mark}, nil
	case s.Unmark != nil:
		return sway.Unmark{Name: *s.Unmark}, nil
	case s.Nop != nil:
		return sway.Nop{Comment: *s.Nop}, nil
	case s.TitleFormat != nil:
		return sway.TitleFormat{Format: *s.TitleFormat}, nil
	case s.Opacity != nil:
		mode := sway.OpacitySet
		if s.Opacity.Mode != "" {
			var err error
			mode, err = oneOf(field+".mode", s.Opacity.Mode, sway.OpacitySet, sway.OpacityPlus, sway.OpacityMinus)
			if err != nil {
				return nil, err
			}
		}
		return sway.Opacity{Mode: mode, Value: s.Opacity.Value}, nil
	case s.Urgent != nil:
		action, err := oneOf(field, *s.Urgent,
			sway.UrgentEnable, sway.UrgentDisable, sway.UrgentAllow, sway.UrgentDeny)
		return sway.Urgent{Action: action}, err
	default:
		mode, err := oneOf(field, *s.InhibitIdle,
			sway.IdleFocus, sway.IdleFullscreen, sway.IdleOpen, sway.IdleNone, sway.IdleVisible)
		return sway.InhibitIdle{Mode: mode}, err
	}
}

func flagStep(set bool, field string, sub sway.SubCommand) (sway.SubCommand, error) {
	if !set {
		return nil, fieldErr(field, "must be true when present")
	}
	return sub, nil
}

func enDisTog(field, value string) (sway.EnDisTog, error) {
	return oneOf(field, value, sway.Enable, sway.Disable, sway.Toggle)
}

func focusStep(target, field string) (sway.SubCommand, error) {
	switch target {
	case "next":
		return sway.FocusCycle{Next: true}, nil
	case "prev":
		return sway.FocusCycle{}, nil
	case "next_sibling":
		return sway.FocusCycle{Next: true, Sibling: true}, nil
	case "prev_sibling":
		return sway.FocusCycle{Sibling: true}, nil
	}
	if out, ok := strings.CutPrefix(target, "output "); ok {
		return sway.FocusOutput{Output: sway.Output(out)}, nil
	}
	t, err := oneOf(field, target,
		sway.FocusThis, sway.FocusUp, sway.FocusRight, sway.FocusDown, sway.FocusLeft,
		sway.FocusChild, sway.FocusParent, sway.FocusTiling, sway.FocusFloating, sway.FocusModeToggle)
	if err != nil {
		return nil, err
	}
	return sway.Focus{Target: t}, nil
}

func layoutStep(layout, field string) (sway.SubCommand, error) {
	words := strings.Fields(layout)
	if len(words) > 0 && words[0] == "toggle" {
		var modes []sway.ToggleMode
		for _, w := range words[1:] {
			m, err := oneOf(field, w,
				sway.ToggleAll, sway.ToggleSplit, sway.ToggleTabbed,
				sway.ToggleStacking, sway.ToggleSplitV, sway.ToggleSplitH)
			if err != nil {
				return nil, err
			}
			modes = append(modes, m)
		}
		return sway.LayoutToggle{Modes: modes}, nil
	}
	mode, err := oneOf(field, layout,
		sway.LayoutDefault, sway.LayoutSplitH, sway.LayoutSplitV, sway.LayoutStacking, sway.LayoutTabbed)
	if err != nil {
		return nil, err
	}
	return sway.Layout{Mode: mode}, nil
}

func moveStep(m MoveStep, field string) (sway.SubCommand, error) {
	targets := 0
	for _, set := range []bool{m.Direction != "", m.Workspace != "", m.Output != "", m.Mark != "", m.Scratchpad, m.Center} {
		if set {
			targets++
		}
	}
	if targets != 1 {
		return nil, fieldErr(field, "exactly one of direction, workspace, output, mark, scratchpad, center is required")
	}

	switch {
	case m.Direction != "":
		dir, err := oneOf(field+".direction", m.Direction, sway.Up, sway.Right, sway.Down, sway.Left)
		if err != nil {
			return nil, err
		}
		return sway.MoveDirection{Direction: dir, Px: m.Px}, nil
	case m.Workspace != "":
		return sway.MoveToWorkspace{Workspace: workspace(m.Workspace)}, nil
	case m.Output != "":
		return sway.MoveToOutput{Output: sway.Output(m.Output)}, nil
	case m.Mark != "":
		return sway.MoveToMark{Mark: m.Mark}, nil
	case m.Scratchpad:
		return sway.MoveToScratchpad{}, nil
	default:
		return sway.MoveCenter{}, nil
	}
}

func resizeStep(r ResizeStep, field string) (sway.SubCommand, error) {
	unit, err := oneOf(field+".unit", r.Unit, sway.UnitDefault, sway.UnitPx, sway.UnitPpt)
	if err != nil {
		return nil, err
	}
	length := func(n uint32) sway.Length { return sway.Length{Amount: n, Unit: unit} }

	switch r.Mode {
	case "grow", "shrink":
		axis, err := oneOf(field+".axis", r.Axis, sway.AxisWidth, sway.AxisHeight)
		if err != nil {
			return nil, err
		}
		if r.Mode == "grow" {
			return sway.ResizeGrow{Axis: axis, Amount: length(r.Amount)}, nil
		}
		return sway.ResizeShrink{Axis: axis, Amount: length(r.Amount)}, nil
	case "set":
		if r.Width == nil && r.Height == nil {
			return nil, fieldErr(field, "resize set needs width or height")
		}
		var set sway.ResizeSet
		if r.Width != nil {
			set.Width = sway.Ptr(length(*r.Width))
		}
		if r.Height != nil {
			set.Height = sway.Ptr(length(*r.Height))
		}
		return set, nil
	default:
		return nil, fieldErr(field+".mode", "unknown resize mode %q (want grow, shrink or set)", r.Mode)
	}
}

func workspace(name string) sway.Workspace {
	switch name {
	case "prev":
		return sway.WorkspacePrev
	case "next":
		return sway.WorkspaceNext
	case "current":
		return sway.WorkspaceCurrent
	case "prev_on_output":
		return sway.WorkspacePrevOnOutput
	case "next_on_output":
		return sway.WorkspaceNextOnOutput
	case "back_and_forth":
		return sway.WorkspaceBackAndForth
	}
	if n, ok := strings.CutPrefix(name, "number "); ok {
		return sway.WorkspaceByNumber(sway.Named(n))
	}
	return sway.WorkspaceByName(sway.Named(name))
}

func oneOf[T ~string](field, value string, allowed ...T) (T, error) {
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if string(a) == value {
			return a, nil
		}
		if a != "" {
			names = append(names, string(a))
		}
	}
	var zero T
	return zero, fieldErr(field, "unknown value %q (want one of %s)", value, strings.Join(names, ", "))
}

// setKeys returns the yaml names of the non-zero fields of a struct,
// except those listed in skip.
func setKeys(v any, skip ...string) []string {
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	var keys []string
	for i := 0; i < rt.NumField(); i++ {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get("yaml"), ",")
		if rv.Field(i).IsZero() || slices.Contains(skip, name) {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

func exactlyOne(field string, keys []string) *RecipeError {
	if len(keys) == 0 {
		return fieldErr(field, "no key set")
	}
	return fieldErr(field, "exactly one key must be set, got %s", strings.Join(keys, ", "))
}
