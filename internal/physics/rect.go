package physics

// Vec2 is a 2D vector in world units (or world units per frame for velocities).
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned bounding box. X, Y is the bottom-left corner; Y grows upward.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect returns a rect after checking that it is finite and has positive size.
func NewRect(x, y, width, height float32) (Rect, error) {
	if err := requireFinite("x", x); err != nil {
		return Rect{}, err
	}
	if err := requireFinite("y", y); err != nil {
		return Rect{}, err
	}
	if err := requirePositive("width", width); err != nil {
		return Rect{}, err
	}
	if err := requirePositive("height", height); err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, Width: width, Height: height}, nil
}

// Validate reports whether r could have been built by NewRect.
func (r Rect) Validate() error {
	_, err := NewRect(r.X, r.Y, r.Width, r.Height)
	return err
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float32 { return r.Y + r.Height }

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether a and b intersect. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return OverlapsX(a, b) && OverlapsY(a, b)
}

// OverlapsX reports whether the x spans of a and b intersect.
func OverlapsX(a, b Rect) bool {
	return a.X+a.Width > b.X && a.X < b.X+b.Width
}

// OverlapsY reports whether the y spans of a and b intersect.
func OverlapsY(a, b Rect) bool {
	return a.Y+a.Height > b.Y && a.Y < b.Y+b.Height
}
