// Package geometry provides plain geometric records used by the
// coursework exercises. It currently covers rectangles only.
package geometry

// Rectangle is a plain width/height record.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle creates a rectangle with the given dimensions.
// Dimensions are not validated; a zero or negative side yields a zero
// or negative area.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns the rectangle's area (width times height).
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
