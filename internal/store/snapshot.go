package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BeauGeogeo/Winadim/internal/table"
)

// Snapshot is one recorded extraction.
type Snapshot struct {
	ID         string
	Phase      string
	Community  []string
	HeroCards  []string
	Pot        string
	PotTotal   string
	DealerSeat int
	Players    []Player
	CreatedAt  time.Time
}

// Player is one seat row of a recorded snapshot.
type Player struct {
	Seat      int
	Presence  string
	Stack     string
	BetAmount string
	AllIn     bool
	Move      string
	Position  string
}

// SnapshotRepository provides persistence operations for snapshots.
type SnapshotRepository struct {
	db *sql.DB
}

// Snapshots returns the snapshot repository for this store.
func (s *Store) Snapshots() *SnapshotRepository {
	return &SnapshotRepository{db: s.db}
}

// cardSeparator joins card lists into a single column.
const cardSeparator = ","

// Save records a completed extraction and returns its generated id.
func (r *SnapshotRepository) Save(snap *table.Snapshot) (string, error) {
	id := uuid.NewString()

	tx, err := r.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO snapshots (id, phase, community, hero_cards, pot, pot_total, dealer_seat, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, snap.Phase.String(),
		strings.Join(snap.CommunityCards, cardSeparator),
		strings.Join(snap.HeroCards, cardSeparator),
		snap.Pot, snap.PotTotal, int(snap.DealerSeat), time.Now(),
	)
	if err != nil {
		return "", err
	}

	for i := range snap.Players {
		p := &snap.Players[i]
		_, err = tx.Exec(
			`INSERT INTO snapshot_players (snapshot_id, seat, presence, stack, bet_amount, all_in, move, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, int(p.Seat), string(p.Presence), p.Stack, p.BetAmount, p.HasAllIn, p.Move.Code(), p.Position.String(),
		)
		if err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// GetByID retrieves a recorded snapshot with its seat rows.
func (r *SnapshotRepository) GetByID(id string) (*Snapshot, error) {
	snap := &Snapshot{ID: id}
	var community, heroCards string

	err := r.db.QueryRow(
		`SELECT phase, community, hero_cards, pot, pot_total, dealer_seat, created_at
		 FROM snapshots WHERE id = ?`,
		id,
	).Scan(&snap.Phase, &community, &heroCards, &snap.Pot, &snap.PotTotal, &snap.DealerSeat, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	snap.Community = splitCards(community)
	snap.HeroCards = splitCards(heroCards)

	rows, err := r.db.Query(
		`SELECT seat, presence, stack, bet_amount, all_in, move, position
		 FROM snapshot_players WHERE snapshot_id = ? ORDER BY seat`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.Seat, &p.Presence, &p.Stack, &p.BetAmount, &p.AllIn, &p.Move, &p.Position); err != nil {
			return nil, err
		}
		snap.Players = append(snap.Players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snap, nil
}

// List retrieves all recorded snapshots, newest first, without seat rows.
func (r *SnapshotRepository) List() ([]*Snapshot, error) {
	rows, err := r.db.Query(
		`SELECT id, phase, community, hero_cards, pot, pot_total, dealer_seat, created_at
		 FROM snapshots ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*Snapshot
	for rows.Next() {
		snap := &Snapshot{}
		var community, heroCards string
		err := rows.Scan(&snap.ID, &snap.Phase, &community, &heroCards,
			&snap.Pot, &snap.PotTotal, &snap.DealerSeat, &snap.CreatedAt)
		if err != nil {
			return nil, err
		}
		snap.Community = splitCards(community)
		snap.HeroCards = splitCards(heroCards)
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snaps, nil
}

// Delete removes a recorded snapshot and its seat rows.
func (r *SnapshotRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// splitCards undoes the card-list join, returning nil for an empty column.
func splitCards(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, cardSeparator)
}
