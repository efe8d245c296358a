package overlay

import "strings"

// Vec2 represents a 2D vector for positions, sizes and drag offsets.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle. It is a plain value: widgets are
// identified by their ID, never by their geometry.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{X: r.W, Y: r.H} }

// Offset returns the rectangle moved by d.
func (r Rect) Offset(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Resized returns the rectangle with a new size, keeping the top-left corner.
func (r Rect) Resized(size Vec2) Rect {
	return Rect{X: r.X, Y: r.Y, W: size.X, H: size.Y}
}

// Point returns the location of the anchor point a on the rectangle.
func (r Rect) Point(a Align) Vec2 {
	switch a {
	case AlignTopRight:
		return Vec2{X: r.X + r.W, Y: r.Y}
	case AlignBottomLeft:
		return Vec2{X: r.X, Y: r.Y + r.H}
	case AlignBottomRight:
		return Vec2{X: r.X + r.W, Y: r.Y + r.H}
	case AlignMidTop:
		return Vec2{X: r.X + r.W/2, Y: r.Y}
	case AlignMidBottom:
		return Vec2{X: r.X + r.W/2, Y: r.Y + r.H}
	case AlignMidLeft:
		return Vec2{X: r.X, Y: r.Y + r.H/2}
	case AlignMidRight:
		return Vec2{X: r.X + r.W, Y: r.Y + r.H/2}
	case AlignCenter:
		return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
	default:
		return Vec2{X: r.X, Y: r.Y}
	}
}

// Aligned returns the rectangle moved so that its anchor point a lies on p.
func (r Rect) Aligned(a Align, p Vec2) Rect {
	off := r.Point(a).Sub(r.Pos())
	return Rect{X: p.X - off.X, Y: p.Y - off.Y, W: r.W, H: r.H}
}

// Align names the point of a rectangle that tracks a widget's position.
type Align uint8

const (
	AlignTopLeft Align = iota
	AlignTopRight
	AlignBottomLeft
	AlignBottomRight
	AlignMidTop
	AlignMidBottom
	AlignMidLeft
	AlignMidRight
	AlignCenter
)

var alignNames = [...]string{"TL", "TR", "BL", "BR", "MT", "MB", "ML", "MR", "C"}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "?"
}

// ParseAlign accepts the short names (TL, MR, C...) and the long ones
// (topleft, midright, center...). Unknown names fall back to top-left.
func ParseAlign(s string) (Align, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	long := map[string]Align{
		"topleft": AlignTopLeft, "topright": AlignTopRight,
		"bottomleft": AlignBottomLeft, "bottomright": AlignBottomRight,
		"midtop": AlignMidTop, "midbottom": AlignMidBottom,
		"midleft": AlignMidLeft, "midright": AlignMidRight,
		"center": AlignCenter,
	}
	if a, ok := long[s]; ok {
		return a, true
	}
	for i, name := range alignNames {
		if strings.EqualFold(name, s) {
			return Align(i), true
		}
	}
	return AlignTopLeft, false
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp64 is clampf for register values.
func clamp64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
