package physics

import "github.com/chewxy/math32"

// Sweep returns, per axis, the fraction of the move d at which prev starts overlapping o.
// An axis already overlapping gets -Inf; an axis that never closes the gap gets +Inf.
// Values are not clamped to [0, 1].
func Sweep(prev Rect, d Vec2, o Rect) Vec2 {
	return Vec2{
		X: entryTime(prev.X, prev.Width, d.X, o.X, o.Width),
		Y: entryTime(prev.Y, prev.Height, d.Y, o.Y, o.Height),
	}
}

func entryTime(pos, size, d, opos, osize float32) float32 {
	if pos+size > opos && pos < opos+osize {
		return math32.Inf(-1)
	}
	switch {
	case d > 0 && pos+size <= opos:
		return (opos - (pos + size)) / d
	case d < 0 && pos >= opos+osize:
		return (opos + osize - pos) / d
	}
	return math32.Inf(1)
}
