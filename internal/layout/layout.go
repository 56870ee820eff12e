// Package layout holds the pixel calibration for one table skin and
// resolution: the rectangles every classifier crops from a screenshot, the
// color bands the classifiers count pixels in, and the glyph thresholds used
// by the card recognizer. A calibration is a named, versioned Profile so a new
// skin can be supported with a config file instead of a code change.
package layout

import "fmt"

// NumSeats is the number of fixed player slots at the table.
const NumSeats = 5

// HeroSeat is the seat of the player the extraction is run for.
const HeroSeat = 0

// Region is an immutable axis-aligned rectangle in screenshot pixel space.
type Region struct {
	Left   int `hcl:"left"`
	Top    int `hcl:"top"`
	Width  int `hcl:"width"`
	Height int `hcl:"height"`
}

// Band is an inclusive RGB color band paired with the minimum number of
// matching pixels required for a positive detection.
type Band struct {
	RMin      int `hcl:"r_min"`
	RMax      int `hcl:"r_max"`
	GMin      int `hcl:"g_min"`
	GMax      int `hcl:"g_max"`
	BMin      int `hcl:"b_min"`
	BMax      int `hcl:"b_max"`
	MinPixels int `hcl:"min_pixels"`
}

// ShiftedRegion is a base rectangle repeated at a fixed horizontal stride,
// used for the community-card slots and per-slot rank/suit sub-crops.
type ShiftedRegion struct {
	Base  Region `hcl:"base,block"`
	Shift int    `hcl:"shift"`
}

// At returns the rectangle for slot i (base shifted right i times).
func (s ShiftedRegion) At(i int) Region {
	r := s.Base
	r.Left += i * s.Shift
	return r
}

// Profile is one complete table calibration. All coordinates assume a
// screenshot at the exact resolution the profile was measured on; a
// mismatched layout yields silently wrong crops.
type Profile struct {
	Name string

	StackRegions    []Region
	BetRegions      []Region
	CardBackRegions []Region
	ButtonRegions   []Region
	PotRegion       Region

	CommunityCard ShiftedRegion
	CommunityRank ShiftedRegion
	CommunitySuit ShiftedRegion
	HeroRank      ShiftedRegion
	HeroSuit      ShiftedRegion

	StackText    Band
	BetText      Band
	AllInText    Band
	CardBack     Band
	DealerButton Band

	// CardContourThreshold is the binarization intensity for the white card
	// contour check; CardMinArea is the minimum contour area.
	CardContourThreshold int
	CardMinArea          float64

	// Ink thresholds for the rank and suit glyph crops, and the fraction of
	// the rank crop masked out at the top-left corner.
	RankInkThreshold   int
	SuitInkThreshold   int
	CornerMaskStrength float64
}

// DefaultProfile returns the reference calibration: a Winamax 5-max table at
// the resolution the mask banks were captured on.
func DefaultProfile() *Profile {
	return &Profile{
		Name: "winamax-5max",

		StackRegions: []Region{
			{Left: 793, Top: 800, Width: 273, Height: 44},
			{Left: 262, Top: 637, Width: 273, Height: 44},
			{Left: 452, Top: 187, Width: 273, Height: 44},
			{Left: 1080, Top: 187, Width: 273, Height: 44},
			{Left: 1278, Top: 635, Width: 273, Height: 44},
		},
		BetRegions: []Region{
			{Left: 807, Top: 653, Width: 190, Height: 30},
			{Left: 469, Top: 575, Width: 190, Height: 30},
			{Left: 611, Top: 320, Width: 190, Height: 30},
			{Left: 1009, Top: 319, Width: 190, Height: 30},
			{Left: 1159, Top: 574, Width: 190, Height: 30},
		},
		// Seats 2-5 only: the hero's own cards are never face down.
		CardBackRegions: []Region{
			{Left: 322, Top: 522, Width: 147, Height: 86},
			{Left: 516, Top: 75, Width: 149, Height: 86},
			{Left: 1144, Top: 78, Width: 149, Height: 84},
			{Left: 1341, Top: 524, Width: 146, Height: 82},
		},
		ButtonRegions: []Region{
			{Left: 745, Top: 653, Width: 49, Height: 46},
			{Left: 452, Top: 444, Width: 49, Height: 46},
			{Left: 746, Top: 235, Width: 49, Height: 46},
			{Left: 1238, Top: 272, Width: 49, Height: 46},
			{Left: 1239, Top: 615, Width: 49, Height: 46},
		},
		PotRegion: Region{Left: 832, Top: 555, Width: 259, Height: 30},

		CommunityCard: ShiftedRegion{
			Base:  Region{Left: 618, Top: 352, Width: 112, Height: 164},
			Shift: 114, // card width + 2px gap
		},
		CommunityRank: ShiftedRegion{
			Base:  Region{Left: 622, Top: 354, Width: 36, Height: 41},
			Shift: 114,
		},
		CommunitySuit: ShiftedRegion{
			Base:  Region{Left: 622, Top: 407, Width: 35, Height: 31},
			Shift: 114,
		},
		HeroRank: ShiftedRegion{
			Base:  Region{Left: 830, Top: 689, Width: 36, Height: 41},
			Shift: 43,
		},
		HeroSuit: ShiftedRegion{
			Base:  Region{Left: 830, Top: 741, Width: 35, Height: 31},
			Shift: 43,
		},

		StackText:    Band{RMin: 200, RMax: 255, GMin: 150, GMax: 197, BMin: 0, BMax: 90, MinPixels: 30},
		BetText:      Band{RMin: 200, RMax: 255, GMin: 170, GMax: 240, BMin: 0, BMax: 100, MinPixels: 30},
		AllInText:    Band{RMin: 170, RMax: 255, GMin: 0, GMax: 60, BMin: 0, BMax: 60, MinPixels: 40},
		CardBack:     Band{RMin: 200, RMax: 255, GMin: 25, GMax: 60, BMin: 25, BMax: 60, MinPixels: 100},
		DealerButton: Band{RMin: 200, RMax: 255, GMin: 130, GMax: 255, BMin: 0, BMax: 100, MinPixels: 50},

		CardContourThreshold: 240,
		CardMinArea:          200,

		RankInkThreshold:   240,
		SuitInkThreshold:   200,
		CornerMaskStrength: 0.3,
	}
}

// Validate checks that the profile carries a complete region set.
func (p *Profile) Validate() error {
	if len(p.StackRegions) != NumSeats {
		return fmt.Errorf("profile %s: expected %d stack regions, got %d", p.Name, NumSeats, len(p.StackRegions))
	}
	if len(p.BetRegions) != NumSeats {
		return fmt.Errorf("profile %s: expected %d bet regions, got %d", p.Name, NumSeats, len(p.BetRegions))
	}
	if len(p.CardBackRegions) != NumSeats-1 {
		return fmt.Errorf("profile %s: expected %d card-back regions, got %d", p.Name, NumSeats-1, len(p.CardBackRegions))
	}
	if len(p.ButtonRegions) != NumSeats {
		return fmt.Errorf("profile %s: expected %d button regions, got %d", p.Name, NumSeats, len(p.ButtonRegions))
	}
	if p.CommunityCard.Shift <= 0 {
		return fmt.Errorf("profile %s: community card shift must be positive", p.Name)
	}
	if p.CornerMaskStrength <= 0 || p.CornerMaskStrength >= 1 {
		return fmt.Errorf("profile %s: corner mask strength must be in (0, 1)", p.Name)
	}
	return nil
}
