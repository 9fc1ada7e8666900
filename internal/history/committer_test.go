package history

import (
	"sync"
	"testing"
	"time"
)

type commitRecorder struct {
	mu    sync.Mutex
	texts []string
}

func (r *commitRecorder) commit(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
}

func (r *commitRecorder) committed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

func TestCommitter_DebounceCommit(t *testing.T) {
	rec := &commitRecorder{}
	c := NewCommitter(20*time.Millisecond, 5, rec.commit)

	c.Input("会いたいなあ")
	time.Sleep(80 * time.Millisecond)

	got := rec.committed()
	if len(got) != 1 || got[0] != "会いたいなあ" {
		t.Fatalf("committed = %v, want one commit of the draft", got)
	}
}

func TestCommitter_KeystrokeSupersedes(t *testing.T) {
	rec := &commitRecorder{}
	c := NewCommitter(30*time.Millisecond, 5, rec.commit)

	c.Input("会いたいな")
	time.Sleep(10 * time.Millisecond)
	c.Input("会いたいなあ今すぐ")
	time.Sleep(100 * time.Millisecond)

	got := rec.committed()
	if len(got) != 1 {
		t.Fatalf("committed = %v, want exactly one commit", got)
	}
	if got[0] != "会いたいなあ今すぐ" {
		t.Errorf("committed %q, want the superseding draft", got[0])
	}
}

func TestCommitter_FlushAndTimerShareGuard(t *testing.T) {
	rec := &commitRecorder{}
	c := NewCommitter(20*time.Millisecond, 5, rec.commit)

	// Flush first, then let the timer fire: only one commit may land.
	c.Input("二重登録を防ぐ文章")
	c.Flush()
	time.Sleep(80 * time.Millisecond)

	if got := rec.committed(); len(got) != 1 {
		t.Fatalf("committed = %v, want exactly one commit from dual triggers", got)
	}
}

func TestCommitter_DuplicateSessionTextSuppressed(t *testing.T) {
	rec := &commitRecorder{}
	c := NewCommitter(10*time.Millisecond, 5, rec.commit)

	c.Input("同じ文章をもう一度")
	c.Flush()
	c.Input("同じ文章をもう一度")
	c.Flush()

	if got := rec.committed(); len(got) != 1 {
		t.Fatalf("committed = %v, want the repeat suppressed by the hash guard", got)
	}

	// A different text commits again.
	c.Input("今度は違う文章です")
	c.Flush()
	if got := rec.committed(); len(got) != 2 {
		t.Fatalf("committed = %v, want the new text accepted", got)
	}
}

func TestCommitter_MinLength(t *testing.T) {
	rec := &commitRecorder{}
	c := NewCommitter(10*time.Millisecond, 5, rec.commit)

	c.Input("短い")
	c.Flush()
	c.Input("   ")
	c.Flush()

	if got := rec.committed(); len(got) != 0 {
		t.Fatalf("committed = %v, want short and blank drafts skipped", got)
	}
}

func TestCommitter_FlushWithoutPending(t *testing.T) {
	rec := &commitRecorder{}
	c := NewCommitter(10*time.Millisecond, 5, rec.commit)

	c.Flush()
	if got := rec.committed(); len(got) != 0 {
		t.Fatalf("committed = %v, want nothing", got)
	}
}

func TestCommitter_Session(t *testing.T) {
	a := NewCommitter(time.Millisecond, 1, func(string) {})
	b := NewCommitter(time.Millisecond, 1, func(string) {})
	if a.Session() == "" || a.Session() == b.Session() {
		t.Error("sessions must carry distinct non-empty ids")
	}
}
