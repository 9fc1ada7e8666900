package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/yumeno/kokoro/internal/emotion"
	"github.com/yumeno/kokoro/internal/history"
)

// LoadHistory reads the stored history list, oldest first. Rows whose
// JSON columns fail to parse poison the whole load: per the fallback
// contract the store then reports an empty history instead of an error.
func (db *DB) LoadHistory(ctx context.Context) ([]history.Item, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, ts, snippet, full_text, scores, leaders, top_terms,
		       schema_version, lexicon_hash, pinned
		FROM history ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var items []history.Item
	for rows.Next() {
		var (
			it      history.Item
			scores  string
			leaders string
			terms   string
			pinned  int
		)
		if err := rows.Scan(&it.ID, &it.Timestamp, &it.Snippet, &it.FullText,
			&scores, &leaders, &terms, &it.SchemaVersion, &it.LexiconHash, &pinned); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if json.Unmarshal([]byte(scores), &it.Normalized) != nil ||
			json.Unmarshal([]byte(leaders), &it.Leaders) != nil ||
			json.Unmarshal([]byte(terms), &it.TopTerms) != nil {
			return nil, nil
		}
		it.Pinned = pinned != 0
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return items, nil
}

// SaveHistory replaces the stored list wholesale, preserving order.
// Called on every change; the list is small and local, so a full
// rewrite keeps the stored order trivially consistent.
func (db *DB) SaveHistory(ctx context.Context, items []history.Item) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		for pos, it := range items {
			scores, err := json.Marshal(it.Normalized)
			if err != nil {
				return err
			}
			leaders, err := json.Marshal(it.Leaders)
			if err != nil {
				return err
			}
			if it.Leaders == nil {
				leaders = []byte("[]")
			}
			terms, err := json.Marshal(normalizedTopTerms(it.TopTerms))
			if err != nil {
				return err
			}
			pinned := 0
			if it.Pinned {
				pinned = 1
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO history (
					id, ts, snippet, full_text, scores, leaders, top_terms,
					schema_version, lexicon_hash, pinned, position
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, it.ID, it.Timestamp, it.Snippet, it.FullText,
				string(scores), string(leaders), string(terms),
				it.SchemaVersion, it.LexiconHash, pinned, pos)
			if err != nil {
				return fmt.Errorf("failed to insert history item %s: %w", it.ID, err)
			}
		}
		return nil
	})
}

// normalizedTopTerms keeps nil maps from serializing as JSON null.
func normalizedTopTerms(m map[emotion.Category][]history.TermScore) map[emotion.Category][]history.TermScore {
	if m == nil {
		return map[emotion.Category][]history.TermScore{}
	}
	return m
}
