package vmath

// Rect is an axis-aligned box in board units
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromTopLeft builds a box from its top-left corner and size
func RectFromTopLeft(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// RectFromCenter builds a box from its center and half extents
func RectFromCenter(cx, cy, halfW, halfH float64) Rect {
	return Rect{MinX: cx - halfW, MinY: cy - halfH, MaxX: cx + halfW, MaxY: cy + halfH}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the box midpoint
func (r Rect) Center() (x, y float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// Overlaps is true when the interiors intersect; shared edges do not count
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX &&
		r.MinY < o.MaxY && r.MaxY > o.MinY
}

// Contains reports whether the point lies inside or on the box
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Translate returns the box moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}
