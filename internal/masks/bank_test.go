package masks

import (
	"errors"
	"testing"

	"github.com/BeauGeogeo/Winadim/internal/vision"
)

func TestNewBank_RejectsEmptyBank(t *testing.T) {
	_, err := NewBank(nil, nil)
	if !errors.Is(err, ErrBankShape) {
		t.Errorf("expected ErrBankShape for empty bank, got %v", err)
	}
}

func TestNewBank_RejectsLabelCountMismatch(t *testing.T) {
	bitmaps := []vision.Bitmap{vision.NewBitmap(4, 4), vision.NewBitmap(4, 4)}
	_, err := NewBank(bitmaps, []string{"A"})
	if !errors.Is(err, ErrBankShape) {
		t.Errorf("expected ErrBankShape for label count mismatch, got %v", err)
	}
}

func TestNewBank_RejectsDimensionMismatch(t *testing.T) {
	bitmaps := []vision.Bitmap{vision.NewBitmap(4, 4), vision.NewBitmap(4, 5)}
	_, err := NewBank(bitmaps, []string{"A", "2"})
	if !errors.Is(err, ErrBankShape) {
		t.Errorf("expected ErrBankShape for dimension mismatch, got %v", err)
	}
}

func TestBank_MatchReturnsNearestLabel(t *testing.T) {
	empty := vision.NewBitmap(4, 4)
	full := vision.NewBitmap(4, 4)
	for i := range full.Bits {
		full.Bits[i] = true
	}

	bank, err := NewBank([]vision.Bitmap{empty, full}, []string{"A", "K"})
	if err != nil {
		t.Fatalf("failed to build bank: %v", err)
	}

	// One lone ink pixel is nearest the empty template
	input := vision.NewBitmap(4, 4)
	input.Set(2, 2, true)
	if got := bank.Match(input); got != "A" {
		t.Errorf("expected match A, got %q", got)
	}

	if got := bank.Match(full); got != "K" {
		t.Errorf("expected match K, got %q", got)
	}
}

func TestBank_MatchTieBreaksToFirstDuplicate(t *testing.T) {
	a := vision.NewBitmap(3, 3)
	b := vision.NewBitmap(3, 3)

	bank, err := NewBank([]vision.Bitmap{a, b}, []string{"first", "second"})
	if err != nil {
		t.Fatalf("failed to build bank: %v", err)
	}

	if got := bank.Match(vision.NewBitmap(3, 3)); got != "first" {
		t.Errorf("expected duplicate tie to resolve to the first entry, got %q", got)
	}
}

func TestLabelTables(t *testing.T) {
	if len(RankLabels) != 13 {
		t.Errorf("expected 13 rank labels, got %d", len(RankLabels))
	}
	if len(SuitLabels) != 4 {
		t.Errorf("expected 4 suit labels, got %d", len(SuitLabels))
	}
	if RankLabels[0] != "A" || RankLabels[9] != "10" || RankLabels[12] != "K" {
		t.Errorf("rank label table out of order: %v", RankLabels)
	}
	if SuitLabels[0] != "♦" || SuitLabels[3] != "♥" {
		t.Errorf("suit label table out of order: %v", SuitLabels)
	}
}
