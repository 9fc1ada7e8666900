// Package fingerprint provides the short deterministic content hash used
// for history item identity, duplicate suppression, and lexicon provenance.
package fingerprint

import (
	"strconv"
	"time"
)

// sum32 computes a 31-polynomial rolling hash over the runes of s,
// wrapped to signed 32-bit.
func sum32(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}

// Sum returns the content hash of s rendered in base-36.
func Sum(s string) string {
	h := int64(sum32(s))
	if h < 0 {
		h = -h
	}
	return strconv.FormatInt(h, 36)
}

// ItemID builds a history item id from a creation timestamp and the
// hash of the (already truncated) full text.
func ItemID(ts time.Time, text string) string {
	return strconv.FormatInt(ts.UnixMilli(), 10) + "-" + Sum(text)
}

// Pick selects one entry from pool, seeded deterministically by seed.
// The same seed always yields the same entry for a given pool.
func Pick(seed string, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	h := int64(sum32(seed))
	if h < 0 {
		h = -h
	}
	return pool[h%int64(len(pool))]
}
