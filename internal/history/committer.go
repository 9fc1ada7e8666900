package history

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yumeno/kokoro/internal/fingerprint"
)

// DefaultMinCommitRunes is the minimum trimmed length a text needs
// before it is worth committing.
const DefaultMinCommitRunes = 5

type commitState int

const (
	stateIdle commitState = iota
	statePending
	stateCommitted
)

// Committer coordinates the two commit triggers of an edit session: the
// idle-timer debounce and the flush on session end. Both consult the
// same last-committed hash, so neither can double-append the same edit.
type Committer struct {
	mu       sync.Mutex
	state    commitState
	timer    *time.Timer
	pending  string
	lastHash string

	debounce time.Duration
	minRunes int
	session  string
	commit   func(text string)
}

// NewCommitter returns a committer calling commit for each accepted
// text. minRunes at or below zero falls back to DefaultMinCommitRunes.
func NewCommitter(debounce time.Duration, minRunes int, commit func(text string)) *Committer {
	if minRunes <= 0 {
		minRunes = DefaultMinCommitRunes
	}
	return &Committer{
		debounce: debounce,
		minRunes: minRunes,
		session:  uuid.NewString(),
		commit:   commit,
	}
}

// Session returns the id tagging this edit session.
func (c *Committer) Session() string {
	return c.session
}

// Input registers the latest text of the session and (re)starts the
// debounce timer. Every call supersedes the previous pending text.
func (c *Committer) Input(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = text
	c.state = statePending
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		if c.state != statePending {
			c.mu.Unlock()
			return
		}
		c.tryCommitLocked()
		c.mu.Unlock()
	})
}

// Flush forces an immediate commit of any pending text, the
// blur-equivalent trigger. Safe to call with nothing pending.
func (c *Committer) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.state != statePending {
		return
	}
	c.tryCommitLocked()
}

// tryCommitLocked applies the commit preconditions and fires the
// callback. Once the hash guard is updated the commit always completes.
func (c *Committer) tryCommitLocked() {
	text := strings.TrimSpace(c.pending)
	c.state = stateCommitted
	if len([]rune(text)) < c.minRunes {
		return
	}
	h := fingerprint.Sum(text)
	if h == c.lastHash {
		return
	}
	c.lastHash = h
	c.commit(text)
}
