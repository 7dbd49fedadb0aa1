package sttt

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// ColorWhite is the default cell color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default board background.
var ColorBlack = Color{0, 0, 0, 1}

// Vec2 is a 2D vector used for positions and sizes in world units.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in world units. World space has its
// origin at the center of the board, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectCentered returns the square of side size centered on c.
func RectCentered(c Vec2, size float64) Rect {
	half := size / 2
	return Rect{X: c.X - half, Y: c.Y - half, Width: size, Height: size}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// String returns the lower-case button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}
