package table

// Phase is the betting phase derived from the community-card slots.
type Phase int

const (
	// Preflop means no community card is on the table yet.
	Preflop Phase = iota
	// Postflop means at least the flop has been dealt.
	Postflop
)

func (p Phase) String() string {
	if p == Preflop {
		return "preflop"
	}
	return "postflop"
}

// Snapshot is the complete symbolic table state reconstructed from one
// screenshot. It is assembled once by the orchestrator and read-only
// afterwards; snapshots are never retained across screenshots.
type Snapshot struct {
	Phase          Phase
	CommunityCards []string
	HeroCards      []string
	Pot            string
	PotTotal       string
	DealerSeat     Seat
	Players        [NumSeats]Player
}

// PresentSeats returns the seats marked present, in seat order.
func (s *Snapshot) PresentSeats() []Seat {
	var seats []Seat
	for i := range s.Players {
		if s.Players[i].Presence == Present {
			seats = append(seats, Seat(i))
		}
	}
	return seats
}
