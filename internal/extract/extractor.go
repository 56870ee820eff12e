// Package extract drives the full table-state extraction: one screenshot in,
// one symbolic snapshot out. The stages run strictly in order because each
// one consumes outputs of the previous (phase before cards, presence before
// positions, positions before moves); every stage is a pure function over the
// screenshot and the fragments computed so far.
package extract

import (
	"errors"
	"image"

	"github.com/charmbracelet/log"
	"gocv.io/x/gocv"

	"github.com/BeauGeogeo/Winadim/internal/cards"
	"github.com/BeauGeogeo/Winadim/internal/layout"
	"github.com/BeauGeogeo/Winadim/internal/masks"
	"github.com/BeauGeogeo/Winadim/internal/ocr"
	"github.com/BeauGeogeo/Winadim/internal/table"
	"github.com/BeauGeogeo/Winadim/internal/vision"
)

// ErrDealerNotFound is the fatal condition: no button region fired across all
// five seats, violating the UI invariant that exactly one dealer button is
// visible. The snapshot is discarded.
var ErrDealerNotFound = errors.New("dealer button not found in any seat region")

// Extractor reconstructs a table snapshot from one screenshot. An Extractor
// instance owns the working state of a single extraction call; concurrent
// extractions must use independent instances.
type Extractor struct {
	profile    *layout.Profile
	recognizer *cards.Recognizer
	reader     ocr.TextReader
	logger     *log.Logger

	stackText    vision.Detector
	betText      vision.Detector
	allInText    vision.Detector
	cardBack     vision.Detector
	dealerButton vision.Detector
	cardFace     vision.Detector
}

// New creates an extractor for the given calibration, mask banks and text
// reader.
func New(profile *layout.Profile, banks *masks.Banks, reader ocr.TextReader, logger *log.Logger) *Extractor {
	return &Extractor{
		profile: profile,
		recognizer: cards.NewRecognizer(banks, profile.RankInkThreshold,
			profile.SuitInkThreshold, profile.CornerMaskStrength),
		reader: reader,
		logger: logger.WithPrefix("extract"),

		stackText:    vision.NewBandDetector(profile.StackText),
		betText:      vision.NewBandDetector(profile.BetText),
		allInText:    vision.NewBandDetector(profile.AllInText),
		cardBack:     vision.NewBandDetector(profile.CardBack),
		dealerButton: vision.NewBandDetector(profile.DealerButton),
		cardFace:     vision.NewContourDetector(profile.CardContourThreshold, profile.CardMinArea),
	}
}

// stackReading is one seat's stack-region result.
type stackReading struct {
	text  string
	allIn bool
}

// betReading is one present seat's bet-zone result.
type betReading struct {
	present bool
	text    string
}

// Extract runs the full pipeline on one screenshot and returns the completed
// snapshot. The only fatal fault is ErrDealerNotFound; recognition gaps
// degrade the result and are logged.
func (e *Extractor) Extract(img gocv.Mat) (*table.Snapshot, error) {
	community := e.communityCards(img)
	phase := table.Preflop
	if len(community) > 0 {
		phase = table.Postflop
	}

	hero := e.heroCards(img)
	stacks := e.readStacks(img)
	pot, potTotal := e.readPot(img)
	backs := e.cardBackPresence(img)

	present := presentSeats(stacks)
	bets := e.readBets(img, present)

	dealer, err := e.dealerSeat(img)
	if err != nil {
		return nil, err
	}

	// The hero heads the position order regardless of its own stack reading:
	// the snapshot is taken on the hero's turn.
	allPresent := append([]table.Seat{table.HeroSeat}, present...)
	positions, ok := table.AssignPositions(dealer, allPresent)
	if !ok {
		e.logger.Warn("dealer not among present seats, skipping position assignment",
			"dealer", dealer)
	}

	snapshot := &table.Snapshot{
		Phase:          phase,
		CommunityCards: community,
		HeroCards:      hero,
		Pot:            pot,
		PotTotal:       potTotal,
		DealerSeat:     dealer,
	}

	for seat := table.Seat(0); seat < table.NumSeats; seat++ {
		player := table.Player{
			Seat:     seat,
			Presence: table.Absent,
			Stack:    stacks[seat].text,
			HasAllIn: stacks[seat].allIn,
		}
		if stacks[seat].text != "" || stacks[seat].allIn {
			player.Presence = table.Present
		}
		if ok {
			player.Position = positions[seat]
		}
		snapshot.Players[seat] = player
	}

	snapshot.Players[table.HeroSeat].Move = table.MoveNotPlayed

	for i, seat := range present {
		player := &snapshot.Players[seat]
		player.BetAmount = bets[i].text
		player.Move = table.MoveFor(seat, phase, dealer, present,
			bets[i].present, player.HasAllIn, backs[seat-1])
		if player.Move == table.MoveUnknown {
			e.logger.Warn("could not resolve move", "seat", seat, "dealer", dealer)
		}
	}

	return snapshot, nil
}

// Messages renders the snapshot into the per-seat blocks and the table block
// consumed by the downstream reasoning service.
func (e *Extractor) Messages(s *table.Snapshot) ([]table.Message, table.Message) {
	return table.PlayerMessages(s), table.TableMessage(s)
}

// cropRegion returns a view of the screenshot restricted to r. The caller
// closes it.
func cropRegion(img gocv.Mat, r layout.Region) gocv.Mat {
	return img.Region(image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height))
}

// communityCards reads the revealed community cards. An empty slot 0 means
// preflop and nothing else is inspected. Otherwise slots 0-2 are always read
// and slots 3-4 only when their presence check fires, supporting 3, 4 or 5
// revealed cards.
func (e *Extractor) communityCards(img gocv.Mat) []string {
	var out []string

	for slot := 0; slot < layout.NumSeats; slot++ {
		slotCrop := cropRegion(img, e.profile.CommunityCard.At(slot))
		hasCard := e.cardFace.Detect(slotCrop)
		slotCrop.Close()

		if slot == 0 && !hasCard {
			return nil
		}
		if slot < 3 || hasCard {
			out = append(out, e.cardAt(img, e.profile.CommunityRank.At(slot), e.profile.CommunitySuit.At(slot)))
		}
	}
	return out
}

// heroCards reads the hero's two hole cards.
func (e *Extractor) heroCards(img gocv.Mat) []string {
	out := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		out = append(out, e.cardAt(img, e.profile.HeroRank.At(i), e.profile.HeroSuit.At(i)))
	}
	return out
}

// cardAt recognizes one card from its rank and suit sub-crops.
func (e *Extractor) cardAt(img gocv.Mat, rankRegion, suitRegion layout.Region) string {
	rankCrop := cropRegion(img, rankRegion)
	defer rankCrop.Close()
	suitCrop := cropRegion(img, suitRegion)
	defer suitCrop.Close()
	return e.recognizer.Card(rankCrop, suitCrop)
}

// readStacks reads every seat's stack region: yellow stack text or red all-in
// text triggers a text read, anything else leaves the seat empty. Presence is
// derived from these readings, not observed directly.
func (e *Extractor) readStacks(img gocv.Mat) [table.NumSeats]stackReading {
	var out [table.NumSeats]stackReading

	for seat := 0; seat < table.NumSeats; seat++ {
		crop := cropRegion(img, e.profile.StackRegions[seat])
		switch {
		case e.stackText.Detect(crop):
			out[seat].text = e.readFirst(crop, "stack", seat)
		case e.allInText.Detect(crop):
			out[seat].text = e.readFirst(crop, "stack", seat)
			out[seat].allIn = true
		}
		crop.Close()
	}
	return out
}

// readPot reads the pot region. Two recognized strings are pot and pot total,
// one string is the pot alone.
func (e *Extractor) readPot(img gocv.Mat) (pot, potTotal string) {
	crop := cropRegion(img, e.profile.PotRegion)
	defer crop.Close()

	values, err := e.reader.ReadText(crop)
	if err != nil {
		e.logger.Warn("pot recognition failed", "error", err)
		return "", ""
	}
	switch len(values) {
	case 0:
		e.logger.Warn("pot recognition returned no text")
		return "", ""
	case 1:
		return values[0], ""
	default:
		return values[0], values[1]
	}
}

// cardBackPresence checks seats 2-5 for visible card backs (still in hand).
func (e *Extractor) cardBackPresence(img gocv.Mat) [table.NumSeats - 1]bool {
	var out [table.NumSeats - 1]bool
	for i, region := range e.profile.CardBackRegions {
		crop := cropRegion(img, region)
		out[i] = e.cardBack.Detect(crop)
		crop.Close()
	}
	return out
}

// readBets inspects the bet zone of each present non-hero seat, in seat
// order. Readings stay aligned with the present list: the i-th entry always
// belongs to present[i].
func (e *Extractor) readBets(img gocv.Mat, present []table.Seat) []betReading {
	out := make([]betReading, len(present))
	for i, seat := range present {
		crop := cropRegion(img, e.profile.BetRegions[seat])
		if e.betText.Detect(crop) {
			out[i].present = true
			out[i].text = e.readFirst(crop, "bet", int(seat))
		}
		crop.Close()
	}
	return out
}

// dealerSeat scans the five button regions in seat order and returns the
// first seat whose dealer classifier fires.
func (e *Extractor) dealerSeat(img gocv.Mat) (table.Seat, error) {
	for seat := 0; seat < table.NumSeats; seat++ {
		crop := cropRegion(img, e.profile.ButtonRegions[seat])
		found := e.dealerButton.Detect(crop)
		crop.Close()
		if found {
			return table.Seat(seat), nil
		}
	}
	return 0, ErrDealerNotFound
}

// readFirst reads the first recognized string from a crop. Recognition gaps
// and failures degrade to empty text with a warning; they never abort the
// extraction.
func (e *Extractor) readFirst(crop gocv.Mat, what string, seat int) string {
	value, err := ocr.First(e.reader, crop)
	if err != nil {
		if errors.Is(err, ocr.ErrEmptyResult) {
			e.logger.Warn("recognition returned no text", "region", what, "seat", seat)
		} else {
			e.logger.Warn("text recognition failed", "region", what, "seat", seat, "error", err)
		}
		return ""
	}
	return value
}

// presentSeats derives the non-hero present seats from the stack readings.
func presentSeats(stacks [table.NumSeats]stackReading) []table.Seat {
	var seats []table.Seat
	for seat := 1; seat < table.NumSeats; seat++ {
		if stacks[seat].text != "" || stacks[seat].allIn {
			seats = append(seats, table.Seat(seat))
		}
	}
	return seats
}
