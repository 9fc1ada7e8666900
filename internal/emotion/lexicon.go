package emotion

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/yumeno/kokoro/internal/fingerprint"
)

// Lexeme is a weighted term contributing to one or more categories.
// An empty Categories list means the lexeme scores only its owning category.
type Lexeme struct {
	Term       string
	Weight     float64
	Categories []Category
}

// Targets returns the categories this lexeme's contribution is routed to,
// falling back to the owning category when none are set.
func (l Lexeme) Targets(owner Category) []Category {
	if len(l.Categories) == 0 {
		return []Category{owner}
	}
	return l.Categories
}

// Lexicon maps each category to its list of lexemes. Order within a list
// only matters for display and editing, never for scoring.
type Lexicon map[Category][]Lexeme

// DefaultLexicon returns the built-in lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Affection: {
			{Term: "大好き", Weight: 2.2},
			{Term: "好き", Weight: 1.8},
			{Term: "愛してる", Weight: 3.0},
			{Term: "会いたい", Weight: 2.4, Categories: []Category{Affection, Longing}},
			{Term: "大切", Weight: 1.5},
			{Term: "恋", Weight: 1.6},
			{Term: "ドキドキ", Weight: 1.4, Categories: []Category{Affection, Joy}},
			{Term: "優しい", Weight: 1.2},
			{Term: "抱きしめ", Weight: 2.0, Categories: []Category{Affection, Longing}},
			{Term: "気になる", Weight: 1.0},
		},
		Longing: {
			{Term: "会えない", Weight: 1.8, Categories: []Category{Longing, Loneliness}},
			{Term: "恋しい", Weight: 2.0},
			{Term: "声が聞きたい", Weight: 2.0},
			{Term: "待ってる", Weight: 1.2},
			{Term: "早く会", Weight: 1.6},
			{Term: "夢に出", Weight: 1.4},
			{Term: "遠い", Weight: 1.0, Categories: []Category{Longing, Loneliness}},
		},
		Joy: {
			{Term: "嬉しい", Weight: 1.8},
			{Term: "楽しい", Weight: 1.6},
			{Term: "幸せ", Weight: 2.2},
			{Term: "最高", Weight: 1.5},
			{Term: "わくわく", Weight: 1.4},
			{Term: "ありがとう", Weight: 1.2},
			{Term: "笑", Weight: 1.0},
		},
		Loneliness: {
			{Term: "寂しい", Weight: 2.0},
			{Term: "さみしい", Weight: 2.0},
			{Term: "孤独", Weight: 2.2},
			{Term: "切ない", Weight: 1.8, Categories: []Category{Loneliness, Longing}},
			{Term: "虚しい", Weight: 1.6},
			{Term: "ひとり", Weight: 1.2},
			{Term: "泣き", Weight: 1.4},
		},
		Anxiety: {
			{Term: "不安", Weight: 2.0},
			{Term: "嫌われ", Weight: 2.2},
			{Term: "返事がない", Weight: 1.8, Categories: []Category{Anxiety, Loneliness}},
			{Term: "心配", Weight: 1.6},
			{Term: "怖い", Weight: 1.6},
			{Term: "迷惑かな", Weight: 1.4},
			{Term: "どうしよう", Weight: 1.2},
		},
	}
}

// lexemeJSON is the exchange representation of a lexeme.
type lexemeJSON struct {
	Term       string   `json:"term"`
	Weight     *float64 `json:"weight,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// Encode renders the lexicon in the exchange format: a JSON object with
// exactly the five category keys, each an array of lexeme entries.
func (lx Lexicon) Encode() ([]byte, error) {
	out := make(map[Category][]lexemeJSON, len(Categories))
	for _, c := range Categories {
		entries := make([]lexemeJSON, 0, len(lx[c]))
		for _, l := range lx[c] {
			e := lexemeJSON{Term: l.Term}
			if l.Weight != 1.0 {
				w := l.Weight
				e.Weight = &w
			}
			if len(l.Categories) > 0 {
				for _, cc := range l.Categories {
					e.Categories = append(e.Categories, string(cc))
				}
			}
			entries = append(entries, e)
		}
		out[c] = entries
	}
	return json.MarshalIndent(out, "", "  ")
}

// DecodeLexicon parses the exchange format. Validation is wholesale:
// every one of the five category keys must be present and map to an
// array, and no unknown keys are allowed. On any violation the whole
// payload is rejected and the caller falls back to the default lexicon.
func DecodeLexicon(data []byte) (Lexicon, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("lexicon payload is not a JSON object: %w", err)
	}
	for key := range top {
		if !Category(key).Valid() {
			return nil, fmt.Errorf("unknown category key %q", key)
		}
	}

	lx := make(Lexicon, len(Categories))
	for _, c := range Categories {
		raw, ok := top[string(c)]
		if !ok {
			return nil, fmt.Errorf("missing category key %q", c)
		}
		var entries []lexemeJSON
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("category %q does not map to an array: %w", c, err)
		}
		list := make([]Lexeme, 0, len(entries))
		for _, e := range entries {
			if e.Term == "" {
				continue
			}
			l := Lexeme{Term: e.Term, Weight: 1.0}
			if e.Weight != nil {
				l.Weight = *e.Weight
			}
			for _, name := range e.Categories {
				if cc := Category(name); cc.Valid() {
					l.Categories = append(l.Categories, cc)
				}
			}
			list = append(list, l)
		}
		lx[c] = list
	}
	return lx, nil
}

// Fingerprint returns the content hash of the lexicon's canonical form,
// used to tag stored history items with the lexicon they were scored under.
func (lx Lexicon) Fingerprint() string {
	var parts []string
	for _, c := range Categories {
		for _, l := range lx[c] {
			parts = append(parts, fmt.Sprintf("%s:%s:%.3f:%v", c, l.Term, l.Weight, l.Categories))
		}
	}
	sort.Strings(parts)
	joined := ""
	for _, p := range parts {
		joined += p + "\n"
	}
	return fingerprint.Sum(joined)
}
