package sapling

import "github.com/hajimehoshi/ebiten/v2"

// StyleBits marks which Style fields carry a value. A Style only overrides
// the fields whose bit is set, so partial styles can layer. Values combine
// with bitwise OR.
type StyleBits uint8

const (
	StyleColor   StyleBits = 1 << iota // Color is set
	StyleAlpha                         // Alpha is set
	StyleVisible                       // Visible is set
	StyleBlend                         // Blend is set
	StyleZIndex                        // ZIndex is set
	StyleSize                          // Width and Height are set
)

// Style is the visual payload carried by style update messages. The core
// stores and forwards it without interpreting it; Merge is provided for
// consumers that resolve layered styles.
type Style struct {
	Set     StyleBits
	Color   Color
	Alpha   float64
	Visible bool
	Blend   BlendMode
	ZIndex  int
	Width   float64
	Height  float64
}

// Merge returns s with over's set fields applied on top. Fields not set in
// over keep s's values; the result's Set mask is the union. Later style
// layers win, which is why style messages must stay in FIFO order.
func (s Style) Merge(over Style) Style {
	out := s
	if over.Set&StyleColor != 0 {
		out.Color = over.Color
	}
	if over.Set&StyleAlpha != 0 {
		out.Alpha = over.Alpha
	}
	if over.Set&StyleVisible != 0 {
		out.Visible = over.Visible
	}
	if over.Set&StyleBlend != 0 {
		out.Blend = over.Blend
	}
	if over.Set&StyleZIndex != 0 {
		out.ZIndex = over.ZIndex
	}
	if over.Set&StyleSize != 0 {
		out.Width = over.Width
		out.Height = over.Height
	}
	out.Set = s.Set | over.Set
	return out
}

// StyleClass names a reusable style bundle. Classes are resolved by the
// consumer's style system; to this core a class is just an opaque name.
type StyleClass string

// StyleSelector identifies the interaction state a style applies to.
type StyleSelector uint8

const (
	SelectorHover    StyleSelector = iota // pointer over the view
	SelectorFocus                         // view holds keyboard focus
	SelectorActive                        // view is pressed
	SelectorDisabled                      // view is disabled
	SelectorDragging                      // view is being dragged
)

// BlendMode selects a compositing operation for the view's pixels.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
	BlendErase                   // destination-out (punch transparent holes)
	BlendBelow                   // destination-over (draw behind existing content)
	BlendNone                    // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendBelow:
		return ebiten.BlendDestinationOver
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}
