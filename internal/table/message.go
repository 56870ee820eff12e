package table

import (
	"fmt"
	"strings"
)

// Message is one text block of the rendered snapshot, tagged with the chat
// role the downstream reasoning consumer expects.
type Message struct {
	Role    string
	Content []string
}

// userRole tags every rendered block; the reasoning consumer treats the
// snapshot as user input.
const userRole = "user"

// PlayerMessages renders one text block per seat. The line templates are a
// wire format consumed downstream and must not change shape:
//
//	Player {n} - Status: absent
//	Player {n} - Status: present - Move: {code} - Position: {position}
//	Stack: {stack}
//	Bet: {bet}
//	Player1 cards: {c1}, {c2}
//
// The Move segment is omitted for the hero: the hero is the one requesting a
// decision, not an observed actor.
func PlayerMessages(s *Snapshot) []Message {
	messages := make([]Message, 0, NumSeats)

	for i := range s.Players {
		player := &s.Players[i]

		if player.Presence == Absent {
			messages = append(messages, Message{
				Role:    userRole,
				Content: []string{fmt.Sprintf("Player %d - Status: absent", i+1)},
			})
			continue
		}

		parts := []string{fmt.Sprintf("Player %d", i+1), "Status: present"}
		if player.Seat != HeroSeat {
			parts = append(parts, "Move: "+player.Move.Code())
		}
		parts = append(parts, "Position: "+player.Position.String())

		content := []string{strings.Join(parts, " - ")}

		if !player.HasAllIn && player.Stack != "" {
			content = append(content, "Stack: "+player.Stack)
		}
		if player.BetAmount != "" {
			content = append(content, "Bet: "+player.BetAmount)
		}
		if player.Seat == HeroSeat {
			content = append(content, "Player1 cards: "+strings.Join(s.HeroCards, ", "))
		}

		messages = append(messages, Message{Role: userRole, Content: content})
	}

	return messages
}

// TableMessage renders the table block: the phase, the community cards when
// postflop, and the pot line.
func TableMessage(s *Snapshot) Message {
	content := []string{s.Phase.String()}
	if s.Phase == Postflop {
		content = append(content, strings.Join(s.CommunityCards, ", "))
	}
	content = append(content, fmt.Sprintf("Pot %s and Pot total %s", s.Pot, s.PotTotal))
	return Message{Role: userRole, Content: content}
}
