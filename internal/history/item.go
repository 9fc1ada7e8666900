// Package history retains a bounded, de-duplicated record of past
// analyses, with pinning to protect items from eviction.
package history

import (
	"math"
	"sort"
	"time"

	"github.com/yumeno/kokoro/internal/emotion"
	"github.com/yumeno/kokoro/internal/fingerprint"
)

const (
	// SchemaVersion tags stored items so later readers can migrate.
	SchemaVersion = 1

	maxSnippetRunes  = 120
	maxFullTextRunes = 1000
	maxTopTerms      = 3
)

// TermScore is one visible term contribution kept on a history item.
type TermScore struct {
	Term  string  `json:"term"`
	Value float64 `json:"value"`
}

// Item is one stored analysis. Mutated only by pin toggling.
type Item struct {
	ID            string                            `json:"id"`
	Timestamp     string                            `json:"ts"`
	Snippet       string                            `json:"snippet"`
	FullText      string                            `json:"fullText"`
	Normalized    [5]float64                        `json:"scores"`
	Leaders       []emotion.Category                `json:"leaders"`
	TopTerms      map[emotion.Category][]TermScore  `json:"topTerms"`
	SchemaVersion int                               `json:"schemaVersion"`
	LexiconHash   string                            `json:"lexiconHash"`
	Pinned        bool                              `json:"pinned,omitempty"`
}

// NewItem builds a history item from an analysis result. Text is
// truncated to the storage limits before hashing, so the item id and
// the dedup hash always agree.
func NewItem(now time.Time, text string, res *emotion.Result, lexiconHash string) Item {
	full := truncateRunes(text, maxFullTextRunes)
	it := Item{
		ID:            fingerprint.ItemID(now, full),
		Timestamp:     now.UTC().Format(time.RFC3339),
		Snippet:       truncateRunes(text, maxSnippetRunes),
		FullText:      full,
		Leaders:       append([]emotion.Category(nil), res.Leaders...),
		TopTerms:      topTerms(res.Details),
		SchemaVersion: SchemaVersion,
		LexiconHash:   lexiconHash,
	}
	tuple := res.Normalized.Tuple()
	for i, v := range tuple {
		it.Normalized[i] = round1(v)
	}
	return it
}

// Hash returns the content hash used for duplicate suppression.
func (it Item) Hash() string {
	return fingerprint.Sum(it.FullText)
}

// topTerms keeps the strongest visible contributions per category,
// capped at three, ordered by value then term for stable output. Meta
// adjustments never appear here.
func topTerms(details map[emotion.Category]map[string]float64) map[emotion.Category][]TermScore {
	out := make(map[emotion.Category][]TermScore)
	for c, terms := range details {
		if len(terms) == 0 {
			continue
		}
		list := make([]TermScore, 0, len(terms))
		for term, v := range terms {
			list = append(list, TermScore{Term: term, Value: round1(v)})
		}
		sort.Slice(list, func(i, j int) bool {
			if list[i].Value != list[j].Value {
				return list[i].Value > list[j].Value
			}
			return list[i].Term < list[j].Term
		})
		if len(list) > maxTopTerms {
			list = list[:maxTopTerms]
		}
		out[c] = list
	}
	return out
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
