// Package table models the symbolic state reconstructed from one screenshot
// and the rule-based inference that fills in what is not directly visible:
// table positions relative to the dealer button and each seat's action in the
// current betting round.
package table

// Seat identifies one of the five fixed player slots. Seat 0 is always the
// hero, the player the extraction is run for.
type Seat int

// NumSeats is the number of fixed seats at the table.
const NumSeats = 5

// HeroSeat is the hero's seat.
const HeroSeat Seat = 0

// Presence indicates whether a seat is occupied by an active player.
type Presence string

const (
	// Present means the seat is occupied: a stack reading or an all-in
	// detection exists for it.
	Present Presence = "present"
	// Absent means no stack or all-in signal was found for the seat.
	Absent Presence = "absent"
)

// Move is a seat's inferred action in the current betting round.
type Move int

const (
	// MoveUnset means inference has not run for the seat.
	MoveUnset Move = iota
	// MoveBet means the seat put chips in this round.
	MoveBet
	// MoveAllIn means the seat bet its whole stack.
	MoveAllIn
	// MoveCheck means the seat acted without betting and still holds cards.
	MoveCheck
	// MoveFold means the seat gave up its hand.
	MoveFold
	// MoveNotPlayed means the seat has not acted yet this round.
	MoveNotPlayed
	// MoveUnknown means the action could not be resolved.
	MoveUnknown
)

// Code returns the encoding used in the rendered snapshot messages.
func (m Move) Code() string {
	switch m {
	case MoveBet:
		return "B"
	case MoveAllIn:
		return "B-ALLIN"
	case MoveCheck:
		return "C"
	case MoveFold:
		return "F"
	case MoveNotPlayed:
		return "NP"
	default:
		return "unknown"
	}
}

// Position is a seat's table position relative to the dealer button.
type Position int

const (
	// PositionUnset means position assignment did not run or was skipped.
	PositionUnset Position = iota
	// PositionDealer is the seat holding the dealer button.
	PositionDealer
	// PositionSmallBlind is the first present seat after the dealer.
	PositionSmallBlind
	// PositionBigBlind is the second present seat after the dealer.
	PositionBigBlind
	// PositionOther is any other present seat.
	PositionOther
	// PositionAbsent marks an unoccupied seat.
	PositionAbsent
)

func (p Position) String() string {
	switch p {
	case PositionDealer:
		return "D"
	case PositionSmallBlind:
		return "SB"
	case PositionBigBlind:
		return "BB"
	case PositionOther:
		return "Other"
	case PositionAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// Player is the reconstructed state of one seat. Records are created fresh
// per snapshot and never mutated after the pipeline completes.
type Player struct {
	Seat      Seat
	Presence  Presence
	Stack     string
	BetAmount string
	HasAllIn  bool
	Move      Move
	Position  Position
}
