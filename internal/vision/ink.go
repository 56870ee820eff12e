package vision

import "gocv.io/x/gocv"

// InkMask converts a glyph crop into a binary foreground mask. Multi-channel
// crops are collapsed to a single intensity by summing their channels; a
// pixel is ink iff its collapsed intensity exceeds threshold. Re-applying the
// conversion to its own 0/1 output with threshold 0 yields the same mask.
func InkMask(crop gocv.Mat, threshold int) Bitmap {
	rows, cols := crop.Rows(), crop.Cols()
	mask := NewBitmap(cols, rows)

	channels := crop.Channels()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var intensity int
			if channels == 1 {
				intensity = int(crop.GetUCharAt(y, x))
			} else {
				vec := crop.GetVecbAt(y, x)
				for c := 0; c < channels; c++ {
					intensity += int(vec[c])
				}
			}
			if intensity > threshold {
				mask.Set(x, y, true)
			}
		}
	}
	return mask
}

// MatFromBitmap renders a bitmap as a single-channel 0/1 Mat. The caller owns
// the returned Mat.
func MatFromBitmap(b Bitmap) gocv.Mat {
	m := gocv.NewMatWithSize(b.H, b.W, gocv.MatTypeCV8UC1)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.At(x, y) {
				m.SetUCharAt(y, x, 1)
			}
		}
	}
	return m
}
