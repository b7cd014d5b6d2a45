package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Recipe is a named, declarative sway command list.
type Recipe struct {
	// Name identifies the recipe in send history.
	Name string `yaml:"name" json:"name"`

	// Description says what the recipe is for.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Commands are rendered in order and joined with ';'.
	Commands []Entry `yaml:"commands" json:"commands"`
}

// Entry is one command of a recipe. Exactly one of the command keys must
// be set; Criteria is only allowed together with Do.
type Entry struct {
	Raw        *string     `yaml:"raw,omitempty" json:"raw,omitempty"`
	Criteria   []Criterion `yaml:"criteria,omitempty" json:"criteria,omitempty"`
	Do         []Step      `yaml:"do,omitempty" json:"do,omitempty"`
	Exec       *string     `yaml:"exec,omitempty" json:"exec,omitempty"`
	ExecAlways *string     `yaml:"exec_always,omitempty" json:"exec_always,omitempty"`
	Workspace  *string     `yaml:"workspace,omitempty" json:"workspace,omitempty"`
	Set        *Variable   `yaml:"set,omitempty" json:"set,omitempty"`
	Bindsym    *Binding    `yaml:"bindsym,omitempty" json:"bindsym,omitempty"`
	ForWindow  *WindowRule `yaml:"for_window,omitempty" json:"for_window,omitempty"`
	Include    *string     `yaml:"include,omitempty" json:"include,omitempty"`
}

// Variable is a set entry: $Name is replaced by Value.
type Variable struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Binding is a bindsym entry. Do runs on the containers selected by
// Criteria, or on the focused one.
type Binding struct {
	Modifiers []string    `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Key       string      `yaml:"key" json:"key"`
	Flags     []string    `yaml:"flags,omitempty" json:"flags,omitempty"`
	Criteria  []Criterion `yaml:"criteria,omitempty" json:"criteria,omitempty"`
	Do        []Step      `yaml:"do" json:"do"`
}

// WindowRule is a for_window entry.
type WindowRule struct {
	Criteria []Criterion `yaml:"criteria" json:"criteria"`
	Do       []Step      `yaml:"do" json:"do"`
}

// Criterion is one window-matching condition. Exactly one key must be set.
// String values of "__focused__" compare against the focused container.
type Criterion struct {
	AppID      *string `yaml:"app_id,omitempty" json:"app_id,omitempty"`
	Class      *string `yaml:"class,omitempty" json:"class,omitempty"`
	ConID      *string `yaml:"con_id,omitempty" json:"con_id,omitempty"`
	ConMark    *string `yaml:"con_mark,omitempty" json:"con_mark,omitempty"`
	Floating   *bool   `yaml:"floating,omitempty" json:"floating,omitempty"`
	ID         *uint32 `yaml:"id,omitempty" json:"id,omitempty"`
	Instance   *string `yaml:"instance,omitempty" json:"instance,omitempty"`
	PID        *uint32 `yaml:"pid,omitempty" json:"pid,omitempty"`
	Shell      *string `yaml:"shell,omitempty" json:"shell,omitempty"`
	Tiling     *bool   `yaml:"tiling,omitempty" json:"tiling,omitempty"`
	Title      *string `yaml:"title,omitempty" json:"title,omitempty"`
	Urgent     *string `yaml:"urgent,omitempty" json:"urgent,omitempty"`
	WindowRole *string `yaml:"window_role,omitempty" json:"window_role,omitempty"`
	WindowType *string `yaml:"window_type,omitempty" json:"window_type,omitempty"`
	Workspace  *string `yaml:"workspace,omitempty" json:"workspace,omitempty"`
}

// Step is one sub-command. Exactly one key must be set.
type Step struct {
	Exit           *bool        `yaml:"exit,omitempty" json:"exit,omitempty"`
	Reload         *bool        `yaml:"reload,omitempty" json:"reload,omitempty"`
	Kill           *bool        `yaml:"kill,omitempty" json:"kill,omitempty"`
	ScratchpadShow *bool        `yaml:"scratchpad_show,omitempty" json:"scratchpad_show,omitempty"`
	Floating       *string      `yaml:"floating,omitempty" json:"floating,omitempty"`
	Sticky         *string      `yaml:"sticky,omitempty" json:"sticky,omitempty"`
	Fullscreen     *string      `yaml:"fullscreen,omitempty" json:"fullscreen,omitempty"`
	Border         *BorderStep  `yaml:"border,omitempty" json:"border,omitempty"`
	Focus          *string      `yaml:"focus,omitempty" json:"focus,omitempty"`
	Layout         *string      `yaml:"layout,omitempty" json:"layout,omitempty"`
	Split          *string      `yaml:"split,omitempty" json:"split,omitempty"`
	Move           *MoveStep    `yaml:"move,omitempty" json:"move,omitempty"`
	Resize         *ResizeStep  `yaml:"resize,omitempty" json:"resize,omitempty"`
	Mark           *string      `yaml:"mark,omitempty" json:"mark,omitempty"`
	Unmark         *string      `yaml:"unmark,omitempty" json:"unmark,omitempty"`
	Nop            *string      `yaml:"nop,omitempty" json:"nop,omitempty"`
	TitleFormat    *string      `yaml:"title_format,omitempty" json:"title_format,omitempty"`
	Opacity        *OpacityStep `yaml:"opacity,omitempty" json:"opacity,omitempty"`
	Urgent         *string      `yaml:"urgent,omitempty" json:"urgent,omitempty"`
	InhibitIdle    *string      `yaml:"inhibit_idle,omitempty" json:"inhibit_idle,omitempty"`
}

// BorderStep sets the border style; Width applies to normal and pixel.
type BorderStep struct {
	Style string  `yaml:"style" json:"style"`
	Width *uint32 `yaml:"width,omitempty" json:"width,omitempty"`
}

// MoveStep moves the container. Exactly one target must be set.
type MoveStep struct {
	Direction  string `yaml:"direction,omitempty" json:"direction,omitempty"`
	Px         int32  `yaml:"px,omitempty" json:"px,omitempty"`
	Workspace  string `yaml:"workspace,omitempty" json:"workspace,omitempty"`
	Output     string `yaml:"output,omitempty" json:"output,omitempty"`
	Mark       string `yaml:"mark,omitempty" json:"mark,omitempty"`
	Scratchpad bool   `yaml:"scratchpad,omitempty" json:"scratchpad,omitempty"`
	Center     bool   `yaml:"center,omitempty" json:"center,omitempty"`
}

// ResizeStep resizes the container. Mode is grow, shrink or set; set takes
// Width and Height instead of Axis and Amount.
type ResizeStep struct {
	Mode   string  `yaml:"mode" json:"mode"`
	Axis   string  `yaml:"axis,omitempty" json:"axis,omitempty"`
	Amount uint32  `yaml:"amount,omitempty" json:"amount,omitempty"`
	Unit   string  `yaml:"unit,omitempty" json:"unit,omitempty"`
	Width  *uint32 `yaml:"width,omitempty" json:"width,omitempty"`
	Height *uint32 `yaml:"height,omitempty" json:"height,omitempty"`
}

// OpacityStep changes the view opacity.
type OpacityStep struct {
	Mode  string  `yaml:"mode,omitempty" json:"mode,omitempty"`
	Value float32 `yaml:"value" json:"value"`
}

// ErrUnsupportedExtension is returned by Load for files that are neither
// YAML nor CUE.
var ErrUnsupportedExtension = errors.New("unsupported recipe extension")

// Load reads a recipe from a .yaml, .yml or .cue file.
func Load(path string) (*Recipe, error) {
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".cue":
		return LoadCUE(path)
	default:
		return nil, fmt.Errorf("%w %q (want .yaml, .yml or .cue)", ErrUnsupportedExtension, ext)
	}
}

// LoadYAML reads and parses a YAML recipe, rejecting unknown fields.
func LoadYAML(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML parses a YAML recipe document.
func ParseYAML(data []byte) (*Recipe, error) {
	var r Recipe
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateRecipe(&r); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}
	return &r, nil
}

// validateRecipe checks the fields every recipe needs. Per-entry checks
// happen in Compile.
func validateRecipe(r *Recipe) error {
	if r.Name == "" {
		return &RecipeError{Field: "name", Message: "name is required"}
	}
	if len(r.Commands) == 0 {
		return &RecipeError{Field: "commands", Message: "commands list is required and must be non-empty"}
	}
	return nil
}
