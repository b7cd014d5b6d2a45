package sway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCriterion(t *testing.T) {
	testCases := []struct {
		name string
		c    Criterion
		want string
	}{
		{"app id", AppID("firefox"), `app_id="firefox"`},
		{"focused app id", MatchAppID{Value: Focused[string]()}, `app_id="__focused__"`},
		{"class regex", Class("^Fire.*$"), `class="^Fire.*$"`},
		{"con id", ConID(42), `con_id="42"`},
		{"focused con id", MatchConID{Value: Focused[uint32]()}, `con_id="__focused__"`},
		{"con mark", MatchConMark{Mark: "scratch"}, `con_mark="scratch"`},
		{"floating", MatchFloating{}, "floating"},
		{"tiling", MatchTiling{}, "tiling"},
		{"x11 id", MatchID{ID: 7}, `id="7"`},
		{"pid", MatchPID{PID: 1234}, `pid="1234"`},
		{"shell", MatchShell{Value: Value("xwayland")}, `shell="xwayland"`},
		{"title", Title("vim"), `title="vim"`},
		{"urgent", MatchUrgent{Which: UrgentLatest}, `urgent="latest"`},
		{"window role", MatchWindowRole{Value: Value("pop-up")}, `window_role="pop-up"`},
		{"window type", MatchWindowType{Type: WindowDialog}, `window_type="dialog"`},
		{"workspace", MatchWorkspace{Value: Focused[string]()}, `workspace="__focused__"`},
		{"pointer", &MatchFloating{}, "floating"},
		{"nil", nil, ""},
		{"nil pointer", (*MatchTiling)(nil), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, renderCriterion(tc.c))
		})
	}
}

func TestRenderSubCommand(t *testing.T) {
	testCases := []struct {
		name string
		sub  SubCommand
		want string
	}{
		{"border none", Border{Style: BorderNone}, "border none"},
		{"border normal keeps thickness position", Border{Style: BorderNormal}, "border normal "},
		{"border pixel", Border{Style: BorderPixel, Thickness: Ptr[uint32](2)}, "border pixel 2"},
		{"exit", Exit{}, "exit"},
		{"floating", Floating{State: Toggle}, "floating toggle"},
		{"focus direction", Focus{Target: FocusLeft}, "focus left"},
		{"focus selected", Focus{}, "focus "},
		{"focus next sibling", FocusCycle{Next: true, Sibling: true}, "focus next sibling"},
		{"focus prev", FocusCycle{}, "focus prev "},
		{"focus output", FocusOutput{Output: "HDMI-A-1"}, "focus output HDMI-A-1"},
		{"fullscreen", Fullscreen{State: Enable}, "fullscreen enable "},
		{"fullscreen global", Fullscreen{State: Toggle, Global: true}, "fullscreen toggle global"},
		{"gaps", Gaps{Direction: GapsInner, Scope: GapsAll, Adjust: AdjustPlus, Amount: 5}, "gaps inner all plus 5"},
		{"inhibit idle", InhibitIdle{Mode: IdleFullscreen}, "inhibit_idle fullscreen"},
		{"kill", Kill{}, "kill"},
		{"layout", Layout{Mode: LayoutTabbed}, "layout tabbed"},
		{"layout toggle", LayoutToggle{Modes: []ToggleMode{ToggleSplit, ToggleTabbed}}, "layout toggle split tabbed"},
		{"mark", Mark{Mode: MarkAdd, Name: "a"}, "mark --add a"},
		{"mark replace toggle", Mark{Mode: MarkReplaceToggle, Name: "b"}, "mark --replace --toggle b"},
		{"max render time off", MaxRenderTime{}, "max_render_time off"},
		{"max render time", MaxRenderTime{Msec: 7}, "max_render_time 7"},
		{"move direction", MoveDirection{Direction: Left, Px: 10}, "move left 10 px"},
		{"move position", MovePosition{X: Px(10), Y: Ppt(20)}, "move position 10 px 20 ppt"},
		{"move absolute", MoveAbsolutePosition{X: 1, Y: 2}, "move absolute position 1 px 2 px"},
		{"move center", MoveCenter{Absolute: true}, "move absolute position center"},
		{"move cursor", MoveCursor{}, "move position cursor"},
		{"move to mark", MoveToMark{Mark: "m"}, "move container to mark m"},
		{"move to workspace", MoveToWorkspace{Workspace: WorkspaceByNumber(Named("3"))}, "move container to workspace number 3"},
		{"move to workspace no back and forth", MoveToWorkspace{Workspace: WorkspaceNext, NoAutoBackAndForth: true}, "move --no-auto-back-and-forth container to workspace next"},
		{"move to scratchpad", MoveToScratchpad{}, "move container to scratchpad"},
		{"move to output", MoveToOutput{Output: OutputLeft}, "move container to output left"},
		{"move workspace", MoveWorkspaceToOutput{Output: "DP-1"}, "move workspace to output DP-1"},
		{"nop keeps position", Nop{}, "nop "},
		{"opacity", Opacity{Mode: OpacitySet, Value: 0.5}, "opacity set 0.5"},
		{"reload", Reload{}, "reload"},
		{"rename", RenameWorkspace{Old: "1", New: "web"}, "rename workspace 1 to web"},
		{"rename focused", RenameFocusedWorkspace{New: "mail"}, "rename workspace to mail"},
		{"resize grow", ResizeGrow{Axis: AxisWidth, Amount: Px(10)}, "resize grow width 10 px"},
		{"resize shrink", ResizeShrink{Axis: AxisHeight, Amount: Amount(5)}, "resize shrink height 5"},
		{"resize set", ResizeSet{Width: Ptr(Ppt(50)), Height: Ptr(Px(300))}, "resize set width 50 ppt height 300 px"},
		{"resize set height", ResizeSet{Height: Ptr(Amount(30))}, "resize set height 30"},
		{"scratchpad", ScratchpadShow{}, "scratchpad show"},
		{"shortcuts inhibitor", ShortcutsInhibitor{Enabled: true}, "shortcuts_inhibitor enable"},
		{"split", Split{Mode: SplitVertical}, "split vertical"},
		{"sticky", Sticky{State: Disable}, "sticky disable"},
		{"swap", Swap{By: SwapByMark, Value: "x"}, "swap container with mark x"},
		{"title format", TitleFormat{Format: "%title (%app_id)"}, "title_format %title (%app_id)"},
		{"unmark all", Unmark{}, "unmark "},
		{"urgent", Urgent{Action: UrgentAllow}, "urgent allow"},
		{"pointer", &Kill{}, "kill"},
		{"nil", nil, ""},
		{"nil pointer", (*Exit)(nil), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, renderSubCommand(tc.sub))
		})
	}
}

func TestRenderStandalone(t *testing.T) {
	mod4Shift := Modifiers{Mod4: true, Shift: true}
	red := RGB(0xFF, 0x00, 0x10)

	// Optional positions are covered by TestRender_KeepsOptionalPositions.
	testCases := []struct {
		name string
		s    Standalone
		want string
	}{
		{
			name: "assign workspace",
			s:    AssignWorkspace{Criteria: NewCriteriaGroup(AppID("firefox")), Workspace: WorkspaceByName(Numbered(2, "web"))},
			want: `assign [app_id="firefox"] → workspace 2:web`,
		},
		{
			name: "assign output",
			s:    AssignOutput{Criteria: NewCriteriaGroup(Class("Steam")), Output: "DP-2"},
			want: `assign [class="Steam"] → output DP-2`,
		},
		{
			name: "bindsym modifiers",
			s:    Bindsym{Key: SymKey{Modifiers: mod4Shift, Key: "q"}, Command: Kill{}},
			want: "bindsym Mod4+Shift+q kill",
		},
		{
			name: "bindsym flags and group",
			s: Bindsym{
				Flags:   BindFlags{Locked: true, InputDevice: "1:1:kbd"},
				Key:     SymKey{Group: Group2, Modifiers: Modifiers{Control: true}, Key: "Return"},
				Command: Raw("exec foot"),
			},
			want: "bindsym --locked --input-device=1:1:kbd Group2+Control+Return exec foot",
		},
		{
			name: "bindcode",
			s:    Bindcode{Code: SymCode{Modifiers: Modifiers{Mod1: true}, Code: 24}, Command: Exit{}},
			want: "bindcode Mod1+24 exit",
		},
		{
			name: "bindswitch",
			s:    Bindswitch{Flags: BindswitchFlags{Locked: true}, Switch: SwitchLid, State: SwitchOn, Command: Raw("output eDP-1 disable")},
			want: "bindswitch --locked lid:on output eDP-1 disable",
		},
		{
			name: "bindsym targeted command",
			s:    Bindsym{Key: Key("a"), Command: Select(MatchFloating{}).Do(Kill{})},
			want: "bindsym a [floating]kill",
		},
		{"unbindsym", Unbindsym{Key: Key("b")}, "unbindsym b"},
		{"unbindcode", Unbindcode{Code: SymCode{Code: 9}}, "unbindcode 9"},
		{"unbindswitch", Unbindswitch{Switch: SwitchTablet, State: SwitchToggle}, "unbindswitch tablet:toggle"},
		{
			name: "client colors",
			s:    ClientColors{Class: ClientFocused, Border: red, Background: RGB(0, 0, 0), Text: RGB(0xff, 0xff, 0xff)},
			want: "client.focused #FF0010 #000000 #FFFFFF",
		},
		{
			name: "client colors with indicator and alpha",
			s: ClientColors{
				Class: ClientUrgent, Border: RGBA(0xFF, 0x00, 0x10, 0x01), Background: red, Text: red,
				Indicator: &red, ChildBorder: &red,
			},
			want: "client.urgent #FF001001 #FF0010 #FF0010 #FF0010 #FF0010",
		},
		{
			name: "child border needs indicator",
			s:    ClientColors{Class: ClientUnfocused, Border: red, Background: red, Text: red, ChildBorder: &red},
			want: "client.unfocused #FF0010 #FF0010 #FF0010",
		},
		{"client background", ClientBackground{Color: red}, "client.background #FF0010"},
		{"default border", DefaultBorder{Style: DefaultBorderPixel, Thickness: Ptr[uint32](3)}, "default_border pixel 3"},
		{"default floating border", DefaultFloatingBorder{Style: DefaultBorderNone}, "default_floating_border none"},
		{"exec", Exec{Command: "mako"}, "exec mako"},
		{"exec always", ExecAlways{Command: "kanshi"}, "exec_always kanshi"},
		{"floating max", FloatingMaximumSize{Width: -1, Height: -1}, "floating_maximum_size -1 x -1"},
		{"floating min", FloatingMinimumSize{Width: 75, Height: 50}, "floating_minimum_size 75 x 50"},
		{"floating modifier", FloatingModifier{Modifier: "Mod4", Mode: FloatingModifierNormal}, "floating_modifier Mod4 normal"},
		{"focus follows mouse", FocusFollowsMouse{Mode: MouseFocusAlways}, "focus_follows_mouse always"},
		{"focus on activation", FocusOnWindowActivation{Mode: ActivationSmart}, "focus_on_window_activation smart"},
		{"focus wrapping", FocusWrapping{Mode: FocusWrappingWorkspace}, "focus_wrapping workspace"},
		{
			name: "font",
			s: SetFont{Font: Font{Pango: true, Description: FontDescription{
				Families: []string{"DejaVu Sans Mono", "monospace"},
				Size:     &FontSize{Value: 10},
			}}},
			want: "font pango:DejaVu Sans Mono,monospace 10",
		},
		{"urgency hint", ForceDisplayUrgencyHint{Msec: 500}, "force_display_urgency_hint 500 ms"},
		{"titlebar border", TitlebarBorderThickness{Thickness: 1}, "titlebar_border_thickness 1"},
		{"titlebar padding", TitlebarPadding{Horizontal: 5}, "titlebar_padding 5"},
		{"titlebar padding both", TitlebarPadding{Horizontal: 5, Vertical: Ptr[uint32](1)}, "titlebar_padding 5 1"},
		{
			name: "for window",
			s:    ForWindow{Criteria: NewCriteriaGroup(MatchWindowRole{Value: Value("pop-up")}), Command: Floating{State: Enable}},
			want: `for_window [window_role="pop-up"] floating enable`,
		},
		{"default gaps", DefaultGaps{Direction: GapsOuter, Amount: 4}, "gaps outer 4"},
		{"hide edge borders", HideEdgeBorders{Mode: EdgeBordersSmart, I3: true}, "hide_edge_borders --i3 smart"},
		{"input", Input{Identifier: "type:keyboard", Args: []string{"xkb_layout", "us"}}, "input type:keyboard xkb_layout us"},
		{"seat", Seat{Name: "*", Args: []string{"hide_cursor", "3000"}}, "seat * hide_cursor 3000"},
		{"output", OutputConfig{Name: "eDP-1", Args: []string{"scale", "2"}}, "output eDP-1 scale 2"},
		{"smart borders", SmartBorders{Mode: SmartBordersNoGaps}, "smart_borders no_gaps"},
		{"smart gaps", SmartGaps{Mode: SmartGapsInverseOuter}, "smart_gaps inverse_outer"},
		{"mode switch", ModeSwitch{Name: "resize"}, "mode resize"},
		{"mode define", ModeDefine{Name: "resize", Pango: true, Commands: []string{"{", "}"}}, "mode --pango_markup resize { }"},
		{"mouse warping", MouseWarping{Mode: MouseWarpingContainer}, "mouse_warping container"},
		{"no focus", NoFocus{Criteria: NewCriteriaGroup(MatchWindowType{Type: WindowSplash})}, `no_focus [window_type="splash"]`},
		{"popup", PopupDuringFullscreen{Mode: PopupLeaveFullscreen}, "popup_during_fullscreen leave_fullscreen"},
		{"set", Set{Name: "mod", Value: "Mod4"}, "set $mod Mod4"},
		{"show marks", ShowMarks{Show: true}, "show_marks yes"},
		{"tiling drag", TilingDrag{State: Toggle}, "tiling_drag toggle"},
		{"tiling drag threshold", TilingDragThreshold{Px: 9}, "tiling_drag_threshold 9"},
		{"title align", TitleAlign{Align: AlignCenter}, "title_align center"},
		{"switch workspace", SwitchWorkspace{Workspace: WorkspaceBackAndForth}, "workspace back_and_forth"},
		{"workspace gaps", WorkspaceGaps{Name: Numbered(1, "web"), Direction: GapsInner, Amount: 0}, "workspace 1:web gaps inner 0"},
		{"workspace output", WorkspaceOutput{Name: Named("9"), Output: "DP-1", Fallbacks: []string{"eDP-1"}}, "workspace 9 output DP-1 eDP-1"},
		{"auto back and forth", WorkspaceAutoBackAndForth{}, "workspace_auto_back_and_forth no"},
		{"bar", Bar{ID: "main", Args: []string{"{", "}"}}, "bar main { }"},
		{"default orientation", DefaultOrientation{Mode: OrientationAuto}, "default_orientation auto"},
		{"include", Include{Path: "/etc/sway/config.d/*"}, "include /etc/sway/config.d/*"},
		{"swaybg", SwaybgCommand{Command: "-"}, "swaybg_command -"},
		{"swaynag", SwaynagCommand{Command: "swaynag"}, "swaynag_command swaynag"},
		{"workspace layout", WorkspaceLayout{Mode: WorkspaceLayoutTabbed}, "workspace_layout tabbed"},
		{"xwayland", Xwayland{Mode: XwaylandForce}, "xwayland force"},
		{"pointer", &Exec{Command: "x"}, "exec x"},
		{"nil", nil, ""},
		{"nil pointer", (*Set)(nil), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeWhitespace(renderStandalone(tc.s)))
		})
	}
}

func TestRenderCommand(t *testing.T) {
	testCases := []struct {
		name string
		cmd  Command
		want string
	}{
		{"raw verbatim", Raw("  anything goes  "), "  anything goes  "},
		{"bare sub-command", Kill{}, "kill"},
		{"standalone", Exec{Command: "foot"}, "exec foot"},
		{"targeted", Select(AppID("foot")).Do(Kill{}), `[app_id="foot"]kill`},
		{"nil", nil, ""},
		{"nil targeted", (*Targeted)(nil), ""},
		{"pointer sub-command", &Floating{State: Enable}, "floating enable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(tc.cmd))
		})
	}
}

func TestRender_KeepsOptionalPositions(t *testing.T) {
	noFlags := strings.Repeat(" ", 9)
	red := RGB(0xFF, 0x00, 0x10)

	assert.Equal(t, "border normal ", Render(Border{Style: BorderNormal}))
	assert.Equal(t, "bindsym "+noFlags+" Mod4+Shift+q kill",
		Render(Bindsym{Key: SymKey{Modifiers: Modifiers{Mod4: true, Shift: true}, Key: "q"}, Command: Kill{}}))
	assert.Equal(t, "bindswitch --locked   lid:on reload",
		Render(Bindswitch{Flags: BindswitchFlags{Locked: true}, Switch: SwitchLid, State: SwitchOn, Command: Reload{}}))
	assert.Equal(t, "client.focused #FF0010 #FF0010 #FF0010  ",
		Render(ClientColors{Class: ClientFocused, Border: red, Background: red, Text: red}))
	assert.Equal(t, "titlebar_padding 5 ", Render(TitlebarPadding{Horizontal: 5}))
	assert.Equal(t, "font Mono"+strings.Repeat(" ", 6)+"10 ",
		Render(SetFont{Font: Font{Description: FontDescription{Families: []string{"Mono"}, Size: &FontSize{Value: 10}}}}))
}

func TestRender_ValuesPassThroughUnchecked(t *testing.T) {
	// Acceptance is sway's job: malformed regexes and odd values render as given.
	assert.Equal(t, `[title="(unclosed"]kill`, Select(Title("(unclosed")).Do(Kill{}).String())
	assert.Equal(t, "opacity set 7", Render(Opacity{Mode: OpacitySet, Value: 7}))
	assert.Equal(t, "move left -5 px", Render(MoveDirection{Direction: Left, Px: -5}))
	assert.Equal(t, "mark  ", Render(Mark{}))
	assert.Equal(t, "floating ", Render(Floating{}))
}

func TestValueHelpers(t *testing.T) {
	t.Run("or focused", func(t *testing.T) {
		v, ok := Value("x").Get()
		assert.True(t, ok)
		assert.Equal(t, "x", v)

		_, ok = Focused[string]().Get()
		assert.False(t, ok)
		assert.True(t, Focused[uint32]().IsFocused())
		assert.False(t, OrFocused[uint32]{}.IsFocused())
	})

	t.Run("normalize whitespace", func(t *testing.T) {
		assert.Equal(t, "bindsym a exit", NormalizeWhitespace("bindsym          a exit"))
		assert.Equal(t, "", NormalizeWhitespace(" \t\n "))
	})

	t.Run("font px size and variations", func(t *testing.T) {
		d := FontDescription{
			Families:   []string{"Inter"},
			Style:      FontStyleOptions{Style: StyleItalic, Weight: WeightBold},
			Size:       &FontSize{Value: 12, Px: true},
			Variations: []FontVariation{{Axis: "wght", Value: "300"}, {Axis: "wdth", Value: "80"}},
		}
		assert.Equal(t, "Inter Italic Bold 12px @wght=300,wdth=80", NormalizeWhitespace(d.String()))
	})

	t.Run("workspace targets", func(t *testing.T) {
		assert.Equal(t, "prev_on_output", WorkspacePrevOnOutput.String())
		assert.Equal(t, "1:web", WorkspaceByName(Numbered(1, "web")).String())
		assert.Equal(t, "number 4", WorkspaceByNumber(Named("4")).String())
	})
}
