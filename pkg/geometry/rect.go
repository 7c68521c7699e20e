package geometry

import "fmt"

// Rect is an axis-aligned rectangle defined by its Min (top-left) and
// Max (bottom-right) corners, in the same screen-style coordinates the
// simulation uses (Y grows downward).
type Rect struct {
	Min Vector2D `json:"min"`
	Max Vector2D `json:"max"`
}

// NewRect creates a rectangle from its two corner coordinates.
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{Min: Vector2D{minX, minY}, Max: Vector2D{maxX, maxY}}
}

// String implements the fmt.Stringer interface.
func (r Rect) String() string {
	return fmt.Sprintf("[%s - %s]", r.Min, r.Max)
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the middle point of the rectangle.
func (r Rect) Center() Vector2D {
	return Vector2D{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether the point lies inside the rectangle (inclusive).
func (r Rect) Contains(p Vector2D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inset returns a rectangle shrunk by dx horizontally and dy vertically
// on each side. Negative values grow the rectangle.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		Min: Vector2D{r.Min.X + dx, r.Min.Y + dy},
		Max: Vector2D{r.Max.X - dx, r.Max.Y - dy},
	}
}
