package emotion

// epsilon guards the division in normalization and bounds the tie
// tolerance in leader selection.
const epsilon = 0.0001

// normalize rescales raw scores so the maximum category lands on 100.
// All-zero raw scores stay all-zero.
func normalize(raw Scores) Scores {
	out := NewScores()
	max := raw.Max()
	if max <= 0 {
		return out
	}
	div := max
	if div < epsilon {
		div = epsilon
	}
	for _, c := range Categories {
		out[c] = raw[c] / div * 100
	}
	return out
}

// leaders returns every category within epsilon of the maximum
// normalized score, in canonical order. A zero maximum yields no
// leaders: neutral text is not "five-way tied".
func leaders(normalized Scores) []Category {
	max := normalized.Max()
	if max <= 0 {
		return nil
	}
	var out []Category
	for _, c := range Categories {
		if max-normalized[c] <= epsilon {
			out = append(out, c)
		}
	}
	return out
}

// Band is the intensity tier a normalized score falls in, consumed by
// the comment templates.
type Band string

const (
	BandHigh Band = "high"
	BandMid  Band = "mid"
	BandSoft Band = "soft"
)

// BandFor maps a normalized score to its band.
func BandFor(score float64) Band {
	switch {
	case score >= 85:
		return BandHigh
	case score >= 60:
		return BandMid
	default:
		return BandSoft
	}
}
