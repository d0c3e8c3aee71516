package state

import (
	"database/sql"
	"errors"
	"time"
)

// VolumeState represents the saved volume.
type VolumeState struct {
	Level int16 // decibels
	Muted bool
}

func getVolume(db *sql.DB) (*VolumeState, error) {
	var level int64
	var muted bool

	row := db.QueryRow(`SELECT volume, muted FROM settings WHERE id = 1`)
	err := row.Scan(&level, &muted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &VolumeState{Level: int16(level), Muted: muted}, nil
}

func saveVolume(db *sql.DB, state VolumeState) error {
	_, err := db.Exec(`
		INSERT INTO settings (id, volume, muted, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted,
			updated_at = excluded.updated_at
	`, int64(state.Level), state.Muted, time.Now().Unix())
	return err
}
