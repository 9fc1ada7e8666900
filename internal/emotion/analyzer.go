package emotion

import (
	"strings"
)

const (
	leftWindowRunes  = 8
	rightWindowRunes = 6

	intensifyFactor = 1.5
	diminishFactor  = 0.7

	relationBonusPerHit = 0.6
	emojiBonusPerHit    = 1.2

	ampPerExclamation = 0.05
	ampCap            = 0.5
)

// MetaRelationBoost is the ledger key the relation boost is recorded
// under in Result.Meta. It is never a lexicon term.
const MetaRelationBoost = "relation_boost"

// Result carries the outcome of scoring one text.
type Result struct {
	Raw        Scores
	Normalized Scores
	// Details holds visible per-term contributions per category.
	Details map[Category]map[string]float64
	// Meta holds internal adjustments (relation boost) kept out of any
	// top-terms view.
	Meta    map[Category]map[string]float64
	Leaders []Category
}

// Analyzer scores text against a lexicon. It holds only the fixed
// modifier tables, so a single Analyzer is safe to share across callers.
type Analyzer struct {
	intensifiers []string
	diminishers  []string
	negations    []string
	relationCues []string
	emoji        map[Category][]string
}

// NewAnalyzer returns an Analyzer with the built-in modifier tables.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		intensifiers: []string{"とても", "すごく", "すごい", "超", "めっちゃ", "本当に", "マジで", "かなり"},
		diminishers:  []string{"ちょっと", "少し", "すこし", "やや", "たまに", "なんとなく"},
		negations:    []string{"じゃない", "ではない", "ない", "ません"},
		relationCues: []string{"彼氏", "彼女", "恋人", "付き合", "デート", "カップル", "両想い", "告白"},
		emoji: map[Category][]string{
			Affection:  {"❤️", "💕", "😍"},
			Longing:    {"🥺", "💭"},
			Joy:        {"😊", "✨", "🎉"},
			Loneliness: {"😢", "💧"},
			Anxiety:    {"😨", "💦", "😰"},
		},
	}
}

// Analyze scores text against lx. The relation boost is applied only
// when relationBoost is set. Blank input short-circuits to all zeros.
func (a *Analyzer) Analyze(text string, lx Lexicon, relationBoost bool) *Result {
	res := &Result{
		Raw:        NewScores(),
		Normalized: NewScores(),
		Details:    make(map[Category]map[string]float64),
		Meta:       make(map[Category]map[string]float64),
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return res
	}
	runes := []rune(trimmed)

	for _, c := range Categories {
		for _, l := range lx[c] {
			a.scoreLexeme(res, runes, c, l)
		}
	}

	if relationBoost {
		hits := 0
		for _, cue := range a.relationCues {
			hits += strings.Count(trimmed, cue)
		}
		if hits > 0 {
			bonus := float64(hits) * relationBonusPerHit
			res.Raw[Affection] += bonus
			addContribution(res.Meta, Affection, MetaRelationBoost, bonus)
		}
	}

	for _, c := range Categories {
		for _, glyph := range a.emoji[c] {
			if n := strings.Count(trimmed, glyph); n > 0 {
				res.Raw[c] += float64(n) * emojiBonusPerHit
			}
		}
	}

	exclaims := strings.Count(trimmed, "!") + strings.Count(trimmed, "！")
	amp := 1 + minFloat(ampCap, float64(exclaims)*ampPerExclamation)
	lengthNorm := clamp(180/maxFloat(60, float64(len(runes))), 0.7, 1.0)
	for _, c := range Categories {
		res.Raw[c] *= amp * lengthNorm
	}

	res.Normalized = normalize(res.Raw)
	res.Leaders = leaders(res.Normalized)
	return res
}

// scoreLexeme finds every occurrence of the lexeme term, applies the
// context modifiers, and routes the contribution to its target categories.
func (a *Analyzer) scoreLexeme(res *Result, text []rune, owner Category, l Lexeme) {
	term := []rune(l.Term)
	if len(term) == 0 {
		return
	}

	for cursor := 0; ; {
		idx := runeIndex(text, term, cursor)
		if idx < 0 {
			break
		}
		cursor = idx + len(term)

		left := string(text[maxInt(0, idx-leftWindowRunes):idx])
		right := string(text[cursor:minInt(len(text), cursor+rightWindowRunes)])

		factor := 1.0
		if containsAny(left, a.intensifiers) {
			factor *= intensifyFactor
		}
		if containsAny(left, a.diminishers) {
			factor *= diminishFactor
		}
		if containsAny(right, a.negations) {
			factor = 0
		}

		delta := l.Weight * factor
		for _, cc := range l.Targets(owner) {
			if !cc.Valid() {
				continue
			}
			res.Raw[cc] += delta
			addContribution(res.Details, cc, l.Term, delta)
		}
	}
}

func addContribution(ledger map[Category]map[string]float64, c Category, key string, delta float64) {
	if ledger[c] == nil {
		ledger[c] = make(map[string]float64)
	}
	ledger[c][key] += delta
}

// runeIndex returns the index of the first occurrence of needle in
// haystack at or after from, or -1.
func runeIndex(haystack, needle []rune, from int) int {
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
