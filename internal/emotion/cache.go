package emotion

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yumeno/kokoro/internal/fingerprint"
)

// CachedAnalyzer memoizes analysis results keyed by content hash,
// lexicon fingerprint, and the relation-boost flag. The engine is pure,
// so a cached result is always identical to a fresh one while the
// lexicon fingerprint matches.
type CachedAnalyzer struct {
	inner *Analyzer
	cache *gocache.Cache
}

// NewCachedAnalyzer wraps a in a result cache with the given TTL.
func NewCachedAnalyzer(a *Analyzer, ttl time.Duration) *CachedAnalyzer {
	return &CachedAnalyzer{
		inner: a,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Analyze returns the cached result for (text, lexicon, relationBoost)
// when present, otherwise delegates to the underlying analyzer.
func (ca *CachedAnalyzer) Analyze(text string, lx Lexicon, relationBoost bool) *Result {
	key := fingerprint.Sum(text) + ":" + lx.Fingerprint()
	if relationBoost {
		key += ":rb"
	}
	if v, found := ca.cache.Get(key); found {
		return v.(*Result)
	}
	res := ca.inner.Analyze(text, lx, relationBoost)
	ca.cache.Set(key, res, gocache.DefaultExpiration)
	return res
}
