package masks

import (
	"fmt"
	"path/filepath"
	"sync"

	"gocv.io/x/gocv"

	"github.com/BeauGeogeo/Winadim/internal/vision"
)

// Bank files are grayscale PNGs named by zero-padded index, e.g. ranks/00.png
// holds the template for RankLabels[0].
const (
	ranksSubdir = "ranks"
	suitsSubdir = "suits"
)

// Load reads both banks from dir, which must contain ranks/NN.png for each
// rank label and suits/NN.png for each suit label. A pixel is part of the
// template iff its value is non-zero.
func Load(dir string) (*Banks, error) {
	ranks, err := loadBank(filepath.Join(dir, ranksSubdir), RankLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to load rank bank: %w", err)
	}
	suits, err := loadBank(filepath.Join(dir, suitsSubdir), SuitLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to load suit bank: %w", err)
	}
	return &Banks{Ranks: ranks, Suits: suits}, nil
}

// loadBank reads one bitmap per label from dir.
func loadBank(dir string, labels []string) (*Bank, error) {
	bitmaps := make([]vision.Bitmap, 0, len(labels))
	for i := range labels {
		path := filepath.Join(dir, fmt.Sprintf("%02d.png", i))
		img := gocv.IMRead(path, gocv.IMReadGrayScale)
		if img.Empty() {
			return nil, fmt.Errorf("could not read mask %s", path)
		}
		bitmaps = append(bitmaps, vision.InkMask(img, 0))
		img.Close()
	}
	return NewBank(bitmaps, labels)
}

var (
	sharedOnce  sync.Once
	sharedBanks *Banks
	sharedErr   error
)

// Shared returns the process-wide bank collection, loading it from dir on the
// first call. Later calls return the same banks regardless of dir; the banks
// are read-only and safe to share.
func Shared(dir string) (*Banks, error) {
	sharedOnce.Do(func() {
		sharedBanks, sharedErr = Load(dir)
	})
	return sharedBanks, sharedErr
}
