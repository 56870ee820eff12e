package table

// seatIndex returns the position of seat within the ordered list, or -1.
func seatIndex(seats []Seat, seat Seat) int {
	for i, s := range seats {
		if s == seat {
			return i
		}
	}
	return -1
}

// AssignPositions derives every seat's position from the dealer seat and the
// ordered list of present seats: the present seat after the dealer
// (cyclically) is the small blind, the next the big blind, every other
// present seat is Other and unoccupied seats are absent.
//
// When the dealer seat is not among the present seats the detection is
// inconsistent; no positions are assigned and ok is false so the caller can
// log the degradation and continue.
func AssignPositions(dealer Seat, present []Seat) (positions [NumSeats]Position, ok bool) {
	dealerPos := seatIndex(present, dealer)
	if dealerPos == -1 {
		return positions, false
	}

	n := len(present)
	sb := present[(dealerPos+1)%n]
	bb := present[(dealerPos+2)%n]

	for seat := Seat(0); seat < NumSeats; seat++ {
		switch {
		case seatIndex(present, seat) == -1:
			positions[seat] = PositionAbsent
		case seat == dealer:
			positions[seat] = PositionDealer
		case seat == bb:
			positions[seat] = PositionBigBlind
		case seat == sb:
			positions[seat] = PositionSmallBlind
		default:
			positions[seat] = PositionOther
		}
	}
	return positions, true
}

// MoveFor infers the action of one present non-hero seat.
//
// The seat has acted this round iff its index in the present-seat order is
// past a reference index: preflop the reference is the big blind (dealer
// position + 2, cyclic), postflop it is the dealer itself. A seat that has
// not acted is NotPlayed. For a seat that has acted, a detected bet resolves
// to AllIn or Bet depending on the all-in flag, visible card backs with no
// bet mean Check, and neither means Fold.
//
// If the dealer or the seat cannot be located in the present list the move is
// Unknown, a logged, non-fatal degradation.
func MoveFor(seat Seat, phase Phase, dealer Seat, present []Seat, hasBet, hasAllIn, cardBack bool) Move {
	dealerPos := seatIndex(present, dealer)
	seatPos := seatIndex(present, seat)
	if dealerPos == -1 || seatPos == -1 {
		return MoveUnknown
	}

	var hasPlayed bool
	if phase == Preflop {
		bbPos := (dealerPos + 2) % len(present)
		hasPlayed = seatPos > bbPos
	} else {
		hasPlayed = seatPos > dealerPos
	}
	if !hasPlayed {
		return MoveNotPlayed
	}

	switch {
	case hasBet && hasAllIn:
		return MoveAllIn
	case hasBet:
		return MoveBet
	case cardBack:
		return MoveCheck
	default:
		return MoveFold
	}
}
