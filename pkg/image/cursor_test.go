package image

import (
	"errors"
	"image"
	"testing"
)

func TestCursorRasterOrder(t *testing.T) {
	cursor := NewCursor(image.Rect(0, 0, 3, 2))
	expected := []image.Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}

	for i, point := range expected {
		if cursor.X != point.X || cursor.Y != point.Y {
			t.Fatalf("Step %d: expected cursor at %v, got (%d,%d)", i, point, cursor.X, cursor.Y)
		}
		err := cursor.Advance()
		if i < len(expected)-1 && err != nil {
			t.Fatalf("Step %d: unexpected error %s", i, err)
		}
		if i == len(expected)-1 && !errors.Is(err, ErrCursorExhausted) {
			t.Fatalf("Expected cursor to be exhausted on the last pixel, got %v", err)
		}
	}

	if cursor.X != 2 || cursor.Y != 1 {
		t.Errorf("Exhausted cursor must not move, got (%d,%d)", cursor.X, cursor.Y)
	}
	if !errors.Is(cursor.Advance(), ErrCursorExhausted) {
		t.Errorf("Expected exhaustion to be reported again")
	}
}

func TestCursorSinglePixel(t *testing.T) {
	cursor := NewCursor(image.Rect(0, 0, 1, 1))
	if !cursor.Valid() {
		t.Fatalf("Expected single pixel cursor to be valid")
	}
	if !errors.Is(cursor.Advance(), ErrCursorExhausted) {
		t.Errorf("Expected single pixel image to be exhausted right away")
	}
}

func TestCursorBounds(t *testing.T) {
	cursor := NewCursor(image.Rect(10, 20, 14, 23))
	width, height := cursor.Dimensions()
	if width != 4 || height != 3 {
		t.Fatalf("Expected 4x3 dimensions, got %dx%d", width, height)
	}

	for x, expected := range map[int]bool{-1: false, 0: true, 3: true, 4: false} {
		if cursor.InBoundsX(x) != expected {
			t.Errorf("InBoundsX(%d) should be %v", x, expected)
		}
	}
	for y, expected := range map[int]bool{-1: false, 0: true, 2: true, 3: false} {
		if cursor.InBoundsY(y) != expected {
			t.Errorf("InBoundsY(%d) should be %v", y, expected)
		}
	}
}

func TestCursorCapacity(t *testing.T) {
	testCases := map[image.Rectangle]int{
		image.Rect(0, 0, 100, 100): 30000,
		image.Rect(0, 0, 1, 1):     3,
		image.Rect(5, 5, 8, 7):     18,
		image.Rect(0, 0, 0, 0):     0,
	}
	for bounds, expected := range testCases {
		if capacity := NewCursor(bounds).CapacityBits(); capacity != expected {
			t.Errorf("Expected capacity %d for %v, got %d", expected, bounds, capacity)
		}
	}
}

func TestCursorEmptyImage(t *testing.T) {
	cursor := NewCursor(image.Rect(0, 0, 0, 0))
	if cursor.Valid() {
		t.Errorf("Expected cursor of an empty image to be invalid")
	}
	if !errors.Is(cursor.Advance(), ErrCursorExhausted) {
		t.Errorf("Expected cursor of an empty image to be exhausted")
	}
}
