// Package vision provides the pixel-level primitives the extraction pipeline
// is built from: boolean bitmaps with template matching, ink-mask conversion,
// and the presence classifiers that decide whether a visual feature exists in
// a cropped region.
package vision

import "math"

// Bitmap is a boolean H×W pixel mask.
type Bitmap struct {
	W, H int
	Bits []bool // row-major, len W*H
}

// NewBitmap returns an all-false bitmap of the given size.
func NewBitmap(w, h int) Bitmap {
	return Bitmap{W: w, H: h, Bits: make([]bool, w*h)}
}

// At reports the bit at (x, y).
func (b Bitmap) At(x, y int) bool {
	return b.Bits[y*b.W+x]
}

// Set sets the bit at (x, y).
func (b Bitmap) Set(x, y int, v bool) {
	b.Bits[y*b.W+x] = v
}

// Clone returns an independent copy of the bitmap.
func (b Bitmap) Clone() Bitmap {
	out := Bitmap{W: b.W, H: b.H, Bits: make([]bool, len(b.Bits))}
	copy(out.Bits, b.Bits)
	return out
}

// Mismatch counts the pixels where b and other differ (logical XOR, summed).
// Bitmaps of different sizes are treated as fully mismatched.
func (b Bitmap) Mismatch(other Bitmap) int {
	if b.W != other.W || b.H != other.H {
		return b.W*b.H + other.W*other.H
	}
	count := 0
	for i, v := range b.Bits {
		if v != other.Bits[i] {
			count++
		}
	}
	return count
}

// BestMatch compares input against every reference bitmap and returns the
// index with the fewest mismatched pixels along with that count. Ties go to
// the lowest index. An empty reference slice returns (-1, 0).
func BestMatch(input Bitmap, references []Bitmap) (int, int) {
	bestIndex := -1
	bestScore := math.MaxInt
	for i, ref := range references {
		score := input.Mismatch(ref)
		if score < bestScore {
			bestIndex = i
			bestScore = score
		}
	}
	if bestIndex == -1 {
		return -1, 0
	}
	return bestIndex, bestScore
}

// MaskTopLeft returns a copy of the bitmap with a triangular top-left wedge
// cleared. The wedge spans round(W*strength) columns by round(H*strength)
// rows, its hypotenuse running from the top-right of that box to its
// bottom-left. It suppresses a UI element that overlaps the corner of rank
// glyphs; all other pixels are untouched.
func (b Bitmap) MaskTopLeft(strength float64) Bitmap {
	out := b.Clone()
	maxX := int(math.Round(float64(b.W) * strength))
	maxY := int(math.Round(float64(b.H) * strength))
	if maxY <= 0 || maxX <= 0 {
		return out
	}
	for y := 0; y < maxY && y < b.H; y++ {
		xLimit := maxX - int(float64(maxX)/float64(maxY)*float64(y))
		for x := 0; x < xLimit && x < b.W; x++ {
			out.Set(x, y, false)
		}
	}
	return out
}
