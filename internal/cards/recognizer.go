// Package cards recognizes card labels from rank and suit glyph crops by
// template matching against the reference mask banks.
package cards

import (
	"gocv.io/x/gocv"

	"github.com/BeauGeogeo/Winadim/internal/masks"
	"github.com/BeauGeogeo/Winadim/internal/vision"
)

// Recognizer turns rank/suit crops into card labels. The rank and suit crops
// carry distinct ink thresholds, and rank crops additionally have a
// triangular top-left wedge suppressed where a UI element overlaps the glyph.
type Recognizer struct {
	banks          *masks.Banks
	rankThreshold  int
	suitThreshold  int
	cornerStrength float64
}

// NewRecognizer creates a recognizer over the given banks and calibration
// thresholds.
func NewRecognizer(banks *masks.Banks, rankThreshold, suitThreshold int, cornerStrength float64) *Recognizer {
	return &Recognizer{
		banks:          banks,
		rankThreshold:  rankThreshold,
		suitThreshold:  suitThreshold,
		cornerStrength: cornerStrength,
	}
}

// Rank matches a rank crop against the rank bank and returns its label.
func (r *Recognizer) Rank(crop gocv.Mat) string {
	mask := vision.InkMask(crop, r.rankThreshold).MaskTopLeft(r.cornerStrength)
	return r.banks.Ranks.Match(mask)
}

// Suit matches a suit crop against the suit bank and returns its symbol.
func (r *Recognizer) Suit(crop gocv.Mat) string {
	mask := vision.InkMask(crop, r.suitThreshold)
	return r.banks.Suits.Match(mask)
}

// Card assembles a card label from independently recognized rank and suit
// crops, e.g. "A♥" or "10♠". Rank and suit are not cross-validated.
func (r *Recognizer) Card(rankCrop, suitCrop gocv.Mat) string {
	return r.Rank(rankCrop) + r.Suit(suitCrop)
}
