package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yumeno/kokoro/internal/emotion"
	"github.com/yumeno/kokoro/internal/growth"
)

const (
	keyLexicon = "lexicon"
	keyGrowth  = "growth"
)

func (db *DB) loadBlob(ctx context.Context, key string) ([]byte, bool) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return []byte(value), true
}

func (db *DB) saveBlob(ctx context.Context, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO blobs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to save %s blob: %w", key, err)
	}
	return nil
}

// LoadLexicon returns the stored lexicon, or the built-in default when
// nothing is stored or the stored payload fails validation. The second
// return reports whether the default was substituted for a corrupt blob.
func (db *DB) LoadLexicon(ctx context.Context) (emotion.Lexicon, bool) {
	data, ok := db.loadBlob(ctx, keyLexicon)
	if !ok {
		return emotion.DefaultLexicon(), false
	}
	lx, err := emotion.DecodeLexicon(data)
	if err != nil {
		return emotion.DefaultLexicon(), true
	}
	return lx, false
}

// SaveLexicon stores the lexicon in its exchange format.
func (db *DB) SaveLexicon(ctx context.Context, lx emotion.Lexicon) error {
	data, err := lx.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode lexicon: %w", err)
	}
	return db.saveBlob(ctx, keyLexicon, data)
}

// ResetLexicon removes any stored lexicon so loads see the default again.
func (db *DB) ResetLexicon(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, keyLexicon); err != nil {
		return fmt.Errorf("failed to reset lexicon: %w", err)
	}
	return nil
}

// LoadGrowth returns the stored growth state, or a zero state when
// nothing is stored or the blob is corrupt.
func (db *DB) LoadGrowth(ctx context.Context) growth.State {
	data, ok := db.loadBlob(ctx, keyGrowth)
	if !ok {
		return growth.State{}
	}
	var st growth.State
	if err := json.Unmarshal(data, &st); err != nil {
		return growth.State{}
	}
	return st
}

// SaveGrowth stores the growth state.
func (db *DB) SaveGrowth(ctx context.Context, st growth.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode growth state: %w", err)
	}
	return db.saveBlob(ctx, keyGrowth, data)
}
