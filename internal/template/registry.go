// Package template is the registry of the visual themes a resume can be
// rendered with. Each theme is a closed variant carrying a structural layout
// tag and an override style sheet; adding a theme means adding one variant
// here plus its override sheet in styles.go.
package template

// Kind identifies one of the recognized visual themes.
type Kind string

const (
	KindModern   Kind = "modern"
	KindClassic  Kind = "classic"
	KindCreative Kind = "creative"
	KindMinimal  Kind = "minimal"
)

// Layout is the structural variant of a theme. Sidebar themes reposition
// contact, skills and languages into a left column; linear themes render a
// single top-to-bottom flow.
type Layout string

const (
	LayoutLinear  Layout = "linear"
	LayoutSidebar Layout = "sidebar"
)

// Styles pairs the base sheet shared by every theme with the override sheet
// of a single theme.
type Styles struct {
	Base     string
	Override string
}

type variant struct {
	layout   Layout
	override string
}

var variants = map[Kind]variant{
	KindModern:   {layout: LayoutLinear, override: modernCSS},
	KindClassic:  {layout: LayoutLinear, override: classicCSS},
	KindCreative: {layout: LayoutSidebar, override: creativeCSS},
	KindMinimal:  {layout: LayoutLinear, override: minimalCSS},
}

// Kinds returns the recognized theme identifiers in a fixed order.
func Kinds() []Kind {
	return []Kind{KindModern, KindClassic, KindCreative, KindMinimal}
}

// ParseKind maps an identifier to a Kind. Unknown identifiers resolve to
// modern; this never fails so a stale or garbage selectedTemplate value in a
// stored resume cannot break rendering.
func ParseKind(s string) Kind {
	if _, ok := variants[Kind(s)]; ok {
		return Kind(s)
	}
	return KindModern
}

// Layout returns the structural layout of the theme. Unknown kinds behave
// like modern.
func (k Kind) Layout() Layout {
	v, ok := variants[k]
	if !ok {
		v = variants[KindModern]
	}
	return v.layout
}

// StylesFor returns the base and override sheets for a theme. Unknown kinds
// get the modern override.
func StylesFor(k Kind) Styles {
	v, ok := variants[k]
	if !ok {
		v = variants[KindModern]
	}
	return Styles{Base: baseCSS, Override: v.override}
}
