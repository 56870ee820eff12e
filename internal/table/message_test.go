package table

import (
	"reflect"
	"testing"
)

func testSnapshot() *Snapshot {
	s := &Snapshot{
		Phase:          Postflop,
		CommunityCards: []string{"J♠", "9♥", "2♦"},
		HeroCards:      []string{"A♠", "K♣"},
		Pot:            "30",
		PotTotal:       "50",
		DealerSeat:     2,
	}
	s.Players[0] = Player{Seat: 0, Presence: Present, Stack: "100 BB", Move: MoveNotPlayed, Position: PositionOther}
	s.Players[1] = Player{Seat: 1, Presence: Absent}
	s.Players[2] = Player{Seat: 2, Presence: Present, Stack: "80 BB", Move: MoveCheck, Position: PositionDealer}
	s.Players[3] = Player{Seat: 3, Presence: Present, Stack: "45 BB", BetAmount: "6 BB", Move: MoveBet, Position: PositionSmallBlind}
	s.Players[4] = Player{Seat: 4, Presence: Present, HasAllIn: true, Stack: "ALL-IN", BetAmount: "22 BB", Move: MoveAllIn, Position: PositionBigBlind}
	return s
}

func TestPlayerMessages_LineTemplates(t *testing.T) {
	messages := PlayerMessages(testSnapshot())
	if len(messages) != NumSeats {
		t.Fatalf("expected %d messages, got %d", NumSeats, len(messages))
	}

	// Hero block: no Move segment, hole cards appended
	wantHero := []string{
		"Player 1 - Status: present - Position: Other",
		"Stack: 100 BB",
		"Player1 cards: A♠, K♣",
	}
	if !reflect.DeepEqual(messages[0].Content, wantHero) {
		t.Errorf("hero block:\ngot  %q\nwant %q", messages[0].Content, wantHero)
	}

	// Absent seat: single status line
	wantAbsent := []string{"Player 2 - Status: absent"}
	if !reflect.DeepEqual(messages[1].Content, wantAbsent) {
		t.Errorf("absent block:\ngot  %q\nwant %q", messages[1].Content, wantAbsent)
	}

	// Present seat with a bet
	wantBet := []string{
		"Player 4 - Status: present - Move: B - Position: SB",
		"Stack: 45 BB",
		"Bet: 6 BB",
	}
	if !reflect.DeepEqual(messages[3].Content, wantBet) {
		t.Errorf("betting block:\ngot  %q\nwant %q", messages[3].Content, wantBet)
	}

	// All-in seat: stack line omitted, bet line kept
	wantAllIn := []string{
		"Player 5 - Status: present - Move: B-ALLIN - Position: BB",
		"Bet: 22 BB",
	}
	if !reflect.DeepEqual(messages[4].Content, wantAllIn) {
		t.Errorf("all-in block:\ngot  %q\nwant %q", messages[4].Content, wantAllIn)
	}
}

func TestPlayerMessages_UnsetPositionRendersUnknown(t *testing.T) {
	s := testSnapshot()
	s.Players[2].Position = PositionUnset

	messages := PlayerMessages(s)
	want := "Player 3 - Status: present - Move: C - Position: unknown"
	if messages[2].Content[0] != want {
		t.Errorf("got %q, want %q", messages[2].Content[0], want)
	}
}

func TestTableMessage_Postflop(t *testing.T) {
	msg := TableMessage(testSnapshot())
	want := []string{
		"postflop",
		"J♠, 9♥, 2♦",
		"Pot 30 and Pot total 50",
	}
	if !reflect.DeepEqual(msg.Content, want) {
		t.Errorf("got %q, want %q", msg.Content, want)
	}
}

func TestTableMessage_PreflopOmitsCommunityLine(t *testing.T) {
	s := testSnapshot()
	s.Phase = Preflop
	s.CommunityCards = nil
	s.Pot = "3"
	s.PotTotal = ""

	msg := TableMessage(s)
	want := []string{
		"preflop",
		"Pot 3 and Pot total ",
	}
	if !reflect.DeepEqual(msg.Content, want) {
		t.Errorf("got %q, want %q", msg.Content, want)
	}
}
