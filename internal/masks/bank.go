// Package masks manages the reference bitmaps the card recognizer matches
// glyph crops against: one bank of 13 rank templates and one bank of 4 suit
// templates, each with a parallel index-to-label table. Banks are immutable
// once built.
package masks

import (
	"errors"
	"fmt"

	"github.com/BeauGeogeo/Winadim/internal/vision"
)

// ErrBankShape is returned when a bank's bitmaps or labels are inconsistent.
var ErrBankShape = errors.New("inconsistent mask bank shape")

// RankLabels maps a rank bank index to its card rank.
var RankLabels = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// SuitLabels maps a suit bank index to its suit symbol.
var SuitLabels = []string{"♦", "♠", "♣", "♥"}

// Bank is an ordered, read-only collection of reference bitmaps with their
// labels.
type Bank struct {
	masks  []vision.Bitmap
	labels []string
}

// NewBank builds a bank from parallel bitmap and label slices. Every bitmap
// must share the same dimensions and there must be at least one entry.
func NewBank(bitmaps []vision.Bitmap, labels []string) (*Bank, error) {
	if len(bitmaps) == 0 {
		return nil, fmt.Errorf("%w: empty bank", ErrBankShape)
	}
	if len(bitmaps) != len(labels) {
		return nil, fmt.Errorf("%w: %d bitmaps but %d labels", ErrBankShape, len(bitmaps), len(labels))
	}
	w, h := bitmaps[0].W, bitmaps[0].H
	for i, b := range bitmaps {
		if b.W != w || b.H != h {
			return nil, fmt.Errorf("%w: entry %d is %dx%d, expected %dx%d", ErrBankShape, i, b.W, b.H, w, h)
		}
	}
	return &Bank{masks: bitmaps, labels: labels}, nil
}

// Len returns the number of entries in the bank.
func (b *Bank) Len() int {
	return len(b.masks)
}

// Label returns the label at the given index.
func (b *Bank) Label(i int) string {
	return b.labels[i]
}

// Match returns the label of the bank entry with the fewest mismatched pixels
// against the input mask, ties broken by lowest index.
func (b *Bank) Match(input vision.Bitmap) string {
	index, _ := vision.BestMatch(input, b.masks)
	return b.labels[index]
}

// Banks bundles the rank and suit banks used by one recognizer.
type Banks struct {
	Ranks *Bank
	Suits *Bank
}
