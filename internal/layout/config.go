package layout

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// configFile is the top-level structure of a layout profile file.
type configFile struct {
	Profiles []profileConfig `hcl:"profile,block"`
}

// profileConfig mirrors Profile with every field optional, so a profile file
// only carries what it re-measures; the rest comes from the reference
// calibration.
type profileConfig struct {
	Name string `hcl:"name,label"`

	StackRegions    []Region `hcl:"stack,block"`
	BetRegions      []Region `hcl:"bet,block"`
	CardBackRegions []Region `hcl:"card_back,block"`
	ButtonRegions   []Region `hcl:"button,block"`
	PotRegion       *Region  `hcl:"pot,block"`

	CommunityCard *ShiftedRegion `hcl:"community_card,block"`
	CommunityRank *ShiftedRegion `hcl:"community_rank,block"`
	CommunitySuit *ShiftedRegion `hcl:"community_suit,block"`
	HeroRank      *ShiftedRegion `hcl:"hero_rank,block"`
	HeroSuit      *ShiftedRegion `hcl:"hero_suit,block"`

	StackText    *Band `hcl:"stack_text,block"`
	BetText      *Band `hcl:"bet_text,block"`
	AllInText    *Band `hcl:"all_in_text,block"`
	CardBack     *Band `hcl:"card_back_band,block"`
	DealerButton *Band `hcl:"dealer_button,block"`

	CardContourThreshold int     `hcl:"card_contour_threshold,optional"`
	CardMinArea          float64 `hcl:"card_min_area,optional"`
	RankInkThreshold     int     `hcl:"rank_ink_threshold,optional"`
	SuitInkThreshold     int     `hcl:"suit_ink_threshold,optional"`
	CornerMaskStrength   float64 `hcl:"corner_mask_strength,optional"`
}

// Load reads a layout profile from an HCL file. A missing file yields the
// reference calibration. When the file defines several profiles the first one
// is used unless name selects another.
func Load(filename, name string) (*Profile, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultProfile(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse layout file: %s", diags.Error())
	}

	var cfg configFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode layout file: %s", diags.Error())
	}

	if len(cfg.Profiles) == 0 {
		return nil, fmt.Errorf("layout file %s defines no profiles", filename)
	}

	selected := &cfg.Profiles[0]
	if name != "" {
		selected = nil
		for i := range cfg.Profiles {
			if cfg.Profiles[i].Name == name {
				selected = &cfg.Profiles[i]
				break
			}
		}
		if selected == nil {
			return nil, fmt.Errorf("layout file %s has no profile %q", filename, name)
		}
	}

	profile := merge(selected)
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// merge overlays a decoded profile on the reference calibration.
func merge(c *profileConfig) *Profile {
	p := DefaultProfile()
	p.Name = c.Name

	if len(c.StackRegions) > 0 {
		p.StackRegions = c.StackRegions
	}
	if len(c.BetRegions) > 0 {
		p.BetRegions = c.BetRegions
	}
	if len(c.CardBackRegions) > 0 {
		p.CardBackRegions = c.CardBackRegions
	}
	if len(c.ButtonRegions) > 0 {
		p.ButtonRegions = c.ButtonRegions
	}
	if c.PotRegion != nil {
		p.PotRegion = *c.PotRegion
	}

	if c.CommunityCard != nil {
		p.CommunityCard = *c.CommunityCard
	}
	if c.CommunityRank != nil {
		p.CommunityRank = *c.CommunityRank
	}
	if c.CommunitySuit != nil {
		p.CommunitySuit = *c.CommunitySuit
	}
	if c.HeroRank != nil {
		p.HeroRank = *c.HeroRank
	}
	if c.HeroSuit != nil {
		p.HeroSuit = *c.HeroSuit
	}

	if c.StackText != nil {
		p.StackText = *c.StackText
	}
	if c.BetText != nil {
		p.BetText = *c.BetText
	}
	if c.AllInText != nil {
		p.AllInText = *c.AllInText
	}
	if c.CardBack != nil {
		p.CardBack = *c.CardBack
	}
	if c.DealerButton != nil {
		p.DealerButton = *c.DealerButton
	}

	if c.CardContourThreshold != 0 {
		p.CardContourThreshold = c.CardContourThreshold
	}
	if c.CardMinArea != 0 {
		p.CardMinArea = c.CardMinArea
	}
	if c.RankInkThreshold != 0 {
		p.RankInkThreshold = c.RankInkThreshold
	}
	if c.SuitInkThreshold != 0 {
		p.SuitInkThreshold = c.SuitInkThreshold
	}
	if c.CornerMaskStrength != 0 {
		p.CornerMaskStrength = c.CornerMaskStrength
	}

	return p
}
