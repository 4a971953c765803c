// Package util contains small helpers for layouting and text.
package util

import "strings"

// Rect is a rectangle on the screen.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns a Rect for the given dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains returns whether the given position is within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

// Empty returns whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the part of the rectangle that lies within the other one.
// Rectangles that do not overlap yield an empty rectangle.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.X+r.W, other.X+other.W), min(r.Y+r.H, other.Y+other.H)
	return Rect{X: x0, Y: y0, W: max(x1-x0, 0), H: max(y1-y0, 0)}
}

// Inset returns the rectangle shrunk by the given amounts on each side.
// Width and height do not go below zero.
func (r Rect) Inset(top, left, bottom, right int) Rect {
	result := Rect{
		X: r.X + left,
		Y: r.Y + top,
		W: r.W - left - right,
		H: r.H - top - bottom,
	}
	result.W = max(result.W, 0)
	result.H = max(result.H, 0)
	return result
}

// Center returns the center position of the rectangle, rounded towards the
// top left.
func (r Rect) Center() (x, y int) {
	return r.X + (r.W-1)/2, r.Y + (r.H-1)/2
}

// SplitHorizontally splits the rectangle into n rectangles of equal width
// (the last one getting the remainder), left to right.
func (r Rect) SplitHorizontally(n int) []Rect {
	if n <= 0 {
		return nil
	}
	result := make([]Rect, n)
	w := r.W / n
	for i := range result {
		result[i] = Rect{X: r.X + i*w, Y: r.Y, W: w, H: r.H}
	}
	result[n-1].W = r.W - (n-1)*w
	return result
}

// SplitVertically splits the rectangle into n rectangles of equal height
// (the last one getting the remainder), top to bottom.
func (r Rect) SplitVertically(n int) []Rect {
	if n <= 0 {
		return nil
	}
	result := make([]Rect, n)
	h := r.H / n
	for i := range result {
		result[i] = Rect{X: r.X, Y: r.Y + i*h, W: r.W, H: h}
	}
	result[n-1].H = r.H - (n-1)*h
	return result
}

// TruncateAt truncates the given string to the given length, indicating the
// truncation with "...".
func TruncateAt(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length < 3 {
		return strings.Repeat(".", max(length, 0))
	}
	return string(append(r[:length-3], []rune("...")...))
}

// PadCenter centers the given string within the given width by padding it
// with spaces on both sides.
func PadCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
