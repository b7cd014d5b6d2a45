package sway

// Font is a font description, rendered with the "pango:" prefix when Pango
// is set.
type Font struct {
	Pango       bool
	Description FontDescription
}

// FontDescription renders as "FAMILIES STYLE-OPTIONS SIZE VARIATIONS".
// Families are comma separated; absent parts keep their positions.
type FontDescription struct {
	Families   []string
	Style      FontStyleOptions
	Size       *FontSize
	Variations []FontVariation
}

// FontVariation is one OpenType variation axis setting.
type FontVariation struct {
	Axis  string
	Value string
}

// FontStyleOptions are the optional style words of a font description,
// rendered in the order style, variant, weight, stretch, gravity.
type FontStyleOptions struct {
	Style   FontStyle
	Variant FontVariant
	Weight  FontWeight
	Stretch FontStretch
	Gravity FontGravity
}

// FontSize is a size in points, or in pixels when Px is set.
type FontSize struct {
	Value float32
	Px    bool
}

// FontStyle is the slant of a font. The empty value is omitted.
type FontStyle string

const (
	StyleNormal  FontStyle = "Normal"
	StyleRoman   FontStyle = "Roman"
	StyleOblique FontStyle = "Oblique"
	StyleItalic  FontStyle = "Italic"
)

// FontVariant is the capitalization variant of a font.
type FontVariant string

const (
	VariantSmallCaps     FontVariant = "Small-Caps"
	VariantAllSmallCaps  FontVariant = "All-Small-Caps"
	VariantPetiteCaps    FontVariant = "Petite-Caps"
	VariantAllPetiteCaps FontVariant = "All-Petite-Caps"
	VariantUnicase       FontVariant = "Unicase"
	VariantTitleCaps     FontVariant = "Title-Caps"
)

// FontWeight is the weight of a font.
type FontWeight string

const (
	WeightThin       FontWeight = "Thin"
	WeightUltraLight FontWeight = "Ultra-Light"
	WeightExtraLight FontWeight = "Extra-Light"
	WeightLight      FontWeight = "Light"
	WeightSemiLight  FontWeight = "Semi-Light"
	WeightDemiLight  FontWeight = "Demi-Light"
	WeightBook       FontWeight = "Book"
	WeightRegular    FontWeight = "Regular"
	WeightMedium     FontWeight = "Medium"
	WeightSemiBold   FontWeight = "Semi-Bold"
	WeightDemiBold   FontWeight = "Demi-Bold"
	WeightBold       FontWeight = "Bold"
	WeightUltraBold  FontWeight = "Ultra-Bold"
	WeightExtraBold  FontWeight = "Extra-Bold"
	WeightHeavy      FontWeight = "Heavy"
	WeightBlack      FontWeight = "Black"
	WeightUltraBlack FontWeight = "Ultra-Black"
	WeightExtraBlack FontWeight = "Extra-Black"
)

// FontStretch is the width of a font.
type FontStretch string

const (
	StretchUltraCondensed FontStretch = "Ultra-Condensed"
	StretchExtraCondensed FontStretch = "Extra-Condensed"
	StretchCondensed      FontStretch = "Condensed"
	StretchSemiCondensed  FontStretch = "Semi-Condensed"
	StretchSemiExpanded   FontStretch = "Semi-Expanded"
	StretchExpanded       FontStretch = "Expanded"
	StretchExtraExpanded  FontStretch = "Extra-Expanded"
	StretchUltraExpanded  FontStretch = "Ultra-Expanded"
)

// FontGravity is the glyph orientation of a font.
type FontGravity string

const (
	GravityNotRotated   FontGravity = "Not-Rotated"
	GravitySouth        FontGravity = "South"
	GravityUpsideDown   FontGravity = "Upside-Down"
	GravityNorth        FontGravity = "North"
	GravityRotatedLeft  FontGravity = "Rotated-Left"
	GravityEast         FontGravity = "East"
	GravityRotatedRight FontGravity = "Rotated-Right"
	GravityWest         FontGravity = "West"
)

func (f Font) String() string {
	return when(f.Pango, "pango:") + f.Description.String()
}

func (d FontDescription) String() string {
	size := ""
	if d.Size != nil {
		size = d.Size.String()
	}
	variations := ""
	if len(d.Variations) > 0 {
		variations = "@" + joinAs(d.Variations, ",", func(v FontVariation) string {
			return v.Axis + "=" + v.Value
		})
	}
	return joinAs(d.Families, ",", func(s string) string { return s }) + " " +
		d.Style.String() + " " +
		size + " " +
		variations
}

func (o FontStyleOptions) String() string {
	return string(o.Style) + " " +
		string(o.Variant) + " " +
		string(o.Weight) + " " +
		string(o.Stretch) + " " +
		string(o.Gravity)
}

func (s FontSize) String() string {
	return f32(s.Value) + when(s.Px, "px")
}
