package vision

import (
	"gocv.io/x/gocv"

	"github.com/BeauGeogeo/Winadim/internal/layout"
)

// Detector reports whether a visual feature is present in a cropped
// sub-image. Implementations are stateless and safe for concurrent use.
type Detector interface {
	Detect(crop gocv.Mat) bool
}

// BandDetector detects a feature by counting pixels whose color falls inside
// an inclusive RGB band. Crops are expected in BGR channel order, as produced
// by gocv.IMRead.
type BandDetector struct {
	Band layout.Band
}

// NewBandDetector returns a detector for the given color band.
func NewBandDetector(band layout.Band) *BandDetector {
	return &BandDetector{Band: band}
}

// Detect counts in-band pixels and reports whether the count exceeds the
// band's minimum.
func (d *BandDetector) Detect(crop gocv.Mat) bool {
	return d.Count(crop) > d.Band.MinPixels
}

// Count returns the number of pixels inside the band.
func (d *BandDetector) Count(crop gocv.Mat) int {
	// Scalars are BGR to match the crop's channel order.
	lower := gocv.NewScalar(float64(d.Band.BMin), float64(d.Band.GMin), float64(d.Band.RMin), 0)
	upper := gocv.NewScalar(float64(d.Band.BMax), float64(d.Band.GMax), float64(d.Band.RMax), 255)

	mask := gocv.NewMat()
	defer mask.Close()

	gocv.InRangeWithScalar(crop, lower, upper, &mask)
	return gocv.CountNonZero(mask)
}

// ContourDetector detects a white card face by binarizing the crop and
// looking for an external contour larger than MinArea.
type ContourDetector struct {
	Threshold int
	MinArea   float64
}

// NewContourDetector returns a detector with the given binarization intensity
// and minimum contour area.
func NewContourDetector(threshold int, minArea float64) *ContourDetector {
	return &ContourDetector{Threshold: threshold, MinArea: minArea}
}

// Detect reports whether any sufficiently large bright contour exists in the
// crop.
func (d *ContourDetector) Detect(crop gocv.Mat) bool {
	gray := gocv.NewMat()
	defer gray.Close()

	if crop.Channels() > 1 {
		gocv.CvtColor(crop, &gray, gocv.ColorBGRToGray)
	} else {
		crop.CopyTo(&gray)
	}

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(gray, &binary, float32(d.Threshold), 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(binary, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	for i := 0; i < contours.Size(); i++ {
		if gocv.ContourArea(contours.At(i)) > d.MinArea {
			return true
		}
	}
	return false
}
