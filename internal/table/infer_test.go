package table

import "testing"

func TestAssignPositions_FullTable(t *testing.T) {
	present := []Seat{0, 1, 2, 3, 4}

	positions, ok := AssignPositions(2, present)
	if !ok {
		t.Fatal("expected assignment to succeed")
	}

	want := [NumSeats]Position{PositionOther, PositionOther, PositionDealer, PositionSmallBlind, PositionBigBlind}
	if positions != want {
		t.Errorf("got %v, want %v", positions, want)
	}
}

func TestAssignPositions_WrapsAroundAbsentSeats(t *testing.T) {
	present := []Seat{0, 2, 4}

	positions, ok := AssignPositions(4, present)
	if !ok {
		t.Fatal("expected assignment to succeed")
	}

	if positions[4] != PositionDealer {
		t.Errorf("seat 4: got %v, want dealer", positions[4])
	}
	if positions[0] != PositionSmallBlind {
		t.Errorf("seat 0: got %v, want small blind", positions[0])
	}
	if positions[2] != PositionBigBlind {
		t.Errorf("seat 2: got %v, want big blind", positions[2])
	}
	if positions[1] != PositionAbsent || positions[3] != PositionAbsent {
		t.Errorf("absent seats mislabeled: %v", positions)
	}
}

func TestAssignPositions_DealerNotPresent(t *testing.T) {
	positions, ok := AssignPositions(3, []Seat{0, 1, 2})
	if ok {
		t.Fatal("expected assignment to be skipped")
	}
	for seat, p := range positions {
		if p != PositionUnset {
			t.Errorf("seat %d: expected unset position, got %v", seat, p)
		}
	}
}

func TestMoveFor_Preflop(t *testing.T) {
	present := []Seat{0, 1, 2, 3, 4}
	dealer := Seat(0) // big blind sits at index 2

	tests := []struct {
		name     string
		seat     Seat
		hasBet   bool
		hasAllIn bool
		cardBack bool
		want     Move
	}{
		{"before big blind has not acted", 1, false, false, true, MoveNotPlayed},
		{"big blind itself has not acted", 2, true, false, true, MoveNotPlayed},
		{"acted with visible cards and no bet", 4, false, false, true, MoveCheck},
		{"acted with a bet", 3, true, false, true, MoveBet},
		{"acted with an all-in bet", 3, true, true, true, MoveAllIn},
		{"acted with nothing showing", 4, false, false, false, MoveFold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveFor(tt.seat, Preflop, dealer, present, tt.hasBet, tt.hasAllIn, tt.cardBack)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveFor_PostflopReferenceIsDealer(t *testing.T) {
	present := []Seat{0, 1, 2, 3, 4}
	dealer := Seat(2)

	// Seats at or before the dealer have not acted postflop
	if got := MoveFor(1, Postflop, dealer, present, false, false, true); got != MoveNotPlayed {
		t.Errorf("seat before dealer: got %v, want not played", got)
	}
	if got := MoveFor(2, Postflop, dealer, present, false, false, true); got != MoveNotPlayed {
		t.Errorf("dealer seat: got %v, want not played", got)
	}
	if got := MoveFor(3, Postflop, dealer, present, false, false, true); got != MoveCheck {
		t.Errorf("seat after dealer: got %v, want check", got)
	}
}

func TestMoveFor_UnknownOnLookupFailure(t *testing.T) {
	present := []Seat{1, 3}

	if got := MoveFor(1, Preflop, 2, present, false, false, false); got != MoveUnknown {
		t.Errorf("dealer missing: got %v, want unknown", got)
	}
	if got := MoveFor(2, Preflop, 1, present, false, false, false); got != MoveUnknown {
		t.Errorf("seat missing: got %v, want unknown", got)
	}
}

func TestMoveCodes(t *testing.T) {
	codes := map[Move]string{
		MoveBet:       "B",
		MoveAllIn:     "B-ALLIN",
		MoveCheck:     "C",
		MoveFold:      "F",
		MoveNotPlayed: "NP",
		MoveUnknown:   "unknown",
	}
	for move, want := range codes {
		if got := move.Code(); got != want {
			t.Errorf("%v: got %q, want %q", move, got, want)
		}
	}
}
