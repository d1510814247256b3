// Package sqlite provides a SQLite-backed implementation of the vector
// store port. It is a reference storage collaborator; the analysis core
// never imports it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously
)

// Store implements the VectorStore port on SQLite.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and runs the schema
// migration. Use ":memory:" for an ephemeral store.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS hamms_vectors (
			track_key  TEXT PRIMARY KEY,
			d0 REAL NOT NULL, d1 REAL NOT NULL, d2  REAL NOT NULL,
			d3 REAL NOT NULL, d4 REAL NOT NULL, d5  REAL NOT NULL,
			d6 REAL NOT NULL, d7 REAL NOT NULL, d8  REAL NOT NULL,
			d9 REAL NOT NULL, d10 REAL NOT NULL, d11 REAL NOT NULL,
			confidence REAL NOT NULL
		);

		CREATE TABLE IF NOT EXISTS playlists (
			id        TEXT PRIMARY KEY,
			name      TEXT NOT NULL,
			requested INTEGER NOT NULL,
			exhausted INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS playlist_entries (
			playlist_id      TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
			position         INTEGER NOT NULL,
			title            TEXT NOT NULL,
			artist           TEXT NOT NULL,
			album            TEXT NOT NULL,
			genre            TEXT NOT NULL,
			bpm              REAL NOT NULL,
			key              TEXT NOT NULL,
			energy           REAL,
			transition_type  TEXT,
			overlap_seconds  REAL,
			transition_score REAL,
			PRIMARY KEY (playlist_id, position)
		);
	`)
	return err
}

// SaveVector upserts the vector stored under trackKey.
func (s *Store) SaveVector(ctx context.Context, trackKey string, v domain.HAMMSVector) error {
	args := make([]any, 0, domain.Dimensions+2)
	args = append(args, trackKey)
	for _, val := range v.Values {
		args = append(args, val)
	}
	args = append(args, v.Confidence)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO hamms_vectors
			(track_key, d0, d1, d2, d3, d4, d5, d6, d7, d8, d9, d10, d11, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(track_key) DO UPDATE SET
			d0=excluded.d0, d1=excluded.d1, d2=excluded.d2, d3=excluded.d3,
			d4=excluded.d4, d5=excluded.d5, d6=excluded.d6, d7=excluded.d7,
			d8=excluded.d8, d9=excluded.d9, d10=excluded.d10, d11=excluded.d11,
			confidence=excluded.confidence
	`, args...)
	if err != nil {
		return fmt.Errorf("failed to save vector: %w", err)
	}
	return nil
}

// GetVector loads the vector stored under trackKey.
func (s *Store) GetVector(ctx context.Context, trackKey string) (domain.HAMMSVector, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT d0, d1, d2, d3, d4, d5, d6, d7, d8, d9, d10, d11, confidence
		FROM hamms_vectors WHERE track_key = ?
	`, trackKey)

	var v domain.HAMMSVector
	dest := make([]any, 0, domain.Dimensions+1)
	for i := range v.Values {
		dest = append(dest, &v.Values[i])
	}
	dest = append(dest, &v.Confidence)

	if err := row.Scan(dest...); err != nil {
		if err == sql.ErrNoRows {
			return domain.HAMMSVector{}, domain.ErrNotFound
		}
		return domain.HAMMSVector{}, fmt.Errorf("failed to load vector: %w", err)
	}
	return v, nil
}

// SavePlaylist stores the playlist and its annotated entries atomically.
func (s *Store) SavePlaylist(ctx context.Context, p domain.Playlist) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO playlists (id, name, requested, exhausted)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, requested=excluded.requested, exhausted=excluded.exhausted
	`, p.ID, p.Name, p.Requested, p.Exhausted); err != nil {
		return fmt.Errorf("failed to save playlist: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_entries WHERE playlist_id = ?`, p.ID); err != nil {
		return fmt.Errorf("failed to clear playlist entries: %w", err)
	}

	for i, e := range p.Entries {
		var energy sql.NullFloat64
		if e.Track.Energy != nil {
			energy = sql.NullFloat64{Float64: *e.Track.Energy, Valid: true}
		}
		var tType sql.NullString
		var overlap, score sql.NullFloat64
		if e.Transition != nil {
			tType = sql.NullString{String: string(e.Transition.Type), Valid: true}
			overlap = sql.NullFloat64{Float64: e.Transition.OverlapSeconds, Valid: true}
			score = sql.NullFloat64{Float64: e.Transition.Score, Valid: true}
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO playlist_entries
				(playlist_id, position, title, artist, album, genre, bpm, key, energy,
				 transition_type, overlap_seconds, transition_score)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, i, e.Track.Title, e.Track.Artist, e.Track.Album, e.Track.Genre,
			e.Track.BPM, e.Track.Key, energy, tType, overlap, score); err != nil {
			return fmt.Errorf("failed to save playlist entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit playlist: %w", err)
	}
	return nil
}

// GetPlaylist loads a playlist with its entries in order. Vectors are not
// stored per entry; reload them from the vector table when needed.
func (s *Store) GetPlaylist(ctx context.Context, id string) (domain.Playlist, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, requested, exhausted FROM playlists WHERE id = ?`, id)

	var p domain.Playlist
	if err := row.Scan(&p.ID, &p.Name, &p.Requested, &p.Exhausted); err != nil {
		if err == sql.ErrNoRows {
			return domain.Playlist{}, domain.ErrNotFound
		}
		return domain.Playlist{}, fmt.Errorf("failed to load playlist: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT title, artist, album, genre, bpm, key, energy,
		       transition_type, overlap_seconds, transition_score
		FROM playlist_entries WHERE playlist_id = ? ORDER BY position ASC
	`, p.ID)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to load playlist entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.PlaylistEntry
		var energy sql.NullFloat64
		var tType sql.NullString
		var overlap, score sql.NullFloat64
		if err := rows.Scan(
			&e.Track.Title, &e.Track.Artist, &e.Track.Album, &e.Track.Genre,
			&e.Track.BPM, &e.Track.Key, &energy, &tType, &overlap, &score,
		); err != nil {
			return domain.Playlist{}, fmt.Errorf("failed to scan playlist entry: %w", err)
		}
		if energy.Valid {
			e.Track.Energy = domain.Float(energy.Float64)
		}
		if tType.Valid {
			e.Transition = &domain.TransitionDescriptor{
				Type:           domain.TransitionType(tType.String),
				OverlapSeconds: overlap.Float64,
				Score:          score.Float64,
			}
		}
		p.Entries = append(p.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to iterate playlist entries: %w", err)
	}

	return p, nil
}
