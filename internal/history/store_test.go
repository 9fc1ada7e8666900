package history

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/yumeno/kokoro/internal/emotion"
)

func testItem(t *testing.T, text string) Item {
	t.Helper()
	res := emotion.NewAnalyzer().Analyze(text, emotion.DefaultLexicon(), false)
	return NewItem(time.Now(), text, res, "testlex")
}

func TestStore_AppendDedup(t *testing.T) {
	s := NewStore(10)

	it := testItem(t, "会いたいなあ")
	if err := s.Append(it); err != nil {
		t.Fatalf("first Append() error = %v", err)
	}
	if err := s.Append(testItem(t, "会いたいなあ")); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second Append() error = %v, want ErrDuplicate", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStore_DedupIsFullHistory(t *testing.T) {
	s := NewStore(100)

	s.Append(testItem(t, "最初の文章です"))
	for i := 0; i < 20; i++ {
		s.Append(testItem(t, fmt.Sprintf("別の文章その%d", i)))
	}

	// The twin of the very first item is still suppressed.
	if err := s.Append(testItem(t, "最初の文章です")); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Append() error = %v, want ErrDuplicate far outside any recent window", err)
	}
}

func TestStore_EvictionSkipsPinned(t *testing.T) {
	s := NewStore(3)

	first := testItem(t, "一番古い大事な文章")
	if err := s.Append(first); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPinned(first.ID, true); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		s.Append(testItem(t, fmt.Sprintf("埋め草の文章その%d", i)))
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want cap of 3", s.Len())
	}
	if _, err := s.Get(first.ID); err != nil {
		t.Error("pinned oldest item was evicted")
	}
}

func TestStore_AllPinnedOverflow(t *testing.T) {
	s := NewStore(2)

	for i := 0; i < 4; i++ {
		it := testItem(t, fmt.Sprintf("ピン留めする文章%d", i))
		if err := s.Append(it); err != nil {
			t.Fatal(err)
		}
		if err := s.SetPinned(it.ID, true); err != nil {
			t.Fatal(err)
		}
	}

	// Accepted overflow: nothing evictable remains.
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4 (cap overflow with all pinned)", s.Len())
	}
}

func TestStore_DeletePinnedRefused(t *testing.T) {
	s := NewStore(10)
	it := testItem(t, "消してはいけない文章")
	s.Append(it)
	s.SetPinned(it.ID, true)

	if err := s.Delete(it.ID); !errors.Is(err, ErrPinned) {
		t.Fatalf("Delete() error = %v, want ErrPinned", err)
	}
	if s.Len() != 1 {
		t.Error("pinned item was deleted")
	}

	// Unpin, then delete succeeds.
	s.SetPinned(it.ID, false)
	if err := s.Delete(it.ID); err != nil {
		t.Fatalf("Delete() after unpin error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStore_DeleteNotFound(t *testing.T) {
	s := NewStore(10)
	if err := s.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_ClearKeepsPinned(t *testing.T) {
	s := NewStore(10)
	pinned := testItem(t, "ピン留めされた文章")
	s.Append(pinned)
	s.SetPinned(pinned.ID, true)
	s.Append(testItem(t, "普通の文章その一"))
	s.Append(testItem(t, "普通の文章その二"))

	removed := s.Clear()
	if removed != 2 {
		t.Errorf("Clear() = %d, want 2", removed)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if _, err := s.Get(pinned.ID); err != nil {
		t.Error("pinned item removed by Clear")
	}
}

func TestStore_ClearFreesHashes(t *testing.T) {
	s := NewStore(10)
	s.Append(testItem(t, "消してまた入れる文章"))
	s.Clear()
	if err := s.Append(testItem(t, "消してまた入れる文章")); err != nil {
		t.Errorf("Append() after Clear error = %v, want accepted", err)
	}
}

func TestStore_ExportImportRoundTrip(t *testing.T) {
	s := NewStore(10)
	for i := 0; i < 3; i++ {
		s.Append(testItem(t, fmt.Sprintf("保存する文章その%d", i)))
	}
	s.SetPinned(s.Items()[1].ID, true)
	before := s.Items()

	data, err := s.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	other := NewStore(10)
	if err := other.Import(data); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if !reflect.DeepEqual(before, other.Items()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", other.Items(), before)
	}
}

func TestStore_ImportRejectsInvalid(t *testing.T) {
	s := NewStore(10)
	s.Append(testItem(t, "既にある文章です"))
	before := s.Items()

	tests := []struct {
		name    string
		payload string
	}{
		{"not an array", `{"id": "x"}`},
		{"missing id", `[{"ts": "2026-01-01T00:00:00Z", "fullText": "t"}]`},
		{"missing ts", `[{"id": "x", "fullText": "t"}]`},
		{"missing fullText", `[{"id": "x", "ts": "2026-01-01T00:00:00Z"}]`},
		{"non-string id", `[{"id": 5, "ts": "2026-01-01T00:00:00Z", "fullText": "t"}]`},
		{"one bad element among good", `[
			{"id": "a", "ts": "2026-01-01T00:00:00Z", "fullText": "t", "scores": [0,0,0,0,0], "schemaVersion": 1, "lexiconHash": "x"},
			{"id": "b", "fullText": "u"}
		]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Import([]byte(tt.payload)); err == nil {
				t.Fatal("Import() succeeded, want rejection")
			}
			if !reflect.DeepEqual(s.Items(), before) {
				t.Error("rejected import modified the store")
			}
		})
	}
}

func TestStore_ImportReplacesWholesale(t *testing.T) {
	s := NewStore(10)
	s.Append(testItem(t, "置き換えられる文章"))

	payload := `[{"id": "new", "ts": "2026-01-01T00:00:00Z", "snippet": "n", "fullText": "n",
		"scores": [100,0,0,0,0], "leaders": ["affection"], "topTerms": {}, "schemaVersion": 1,
		"lexiconHash": "x", "pinned": true}]`
	if err := s.Import([]byte(payload)); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	items := s.Items()
	if len(items) != 1 || items[0].ID != "new" || !items[0].Pinned {
		t.Errorf("Items() = %+v, want the imported list only", items)
	}

	// Hash set was rebuilt: the imported text is now a duplicate.
	if err := s.Append(Item{ID: "z", FullText: "n"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Append() error = %v, want ErrDuplicate against imported item", err)
	}
}

func TestNewItem_Truncation(t *testing.T) {
	long := ""
	for i := 0; i < 1200; i++ {
		long += "あ"
	}
	res := emotion.NewAnalyzer().Analyze(long, emotion.DefaultLexicon(), false)
	it := NewItem(time.Now(), long, res, "lex")

	if got := len([]rune(it.FullText)); got != 1000 {
		t.Errorf("fullText length = %d runes, want 1000", got)
	}
	if got := len([]rune(it.Snippet)); got != 120 {
		t.Errorf("snippet length = %d runes, want 120", got)
	}
	// Id hash and dedup hash both derive from the truncated text.
	wantSuffix := "-" + it.Hash()
	if it.ID[len(it.ID)-len(wantSuffix):] != wantSuffix {
		t.Errorf("ID %q does not end in the content hash %q", it.ID, it.Hash())
	}
}

func TestNewItem_TopTermsCapped(t *testing.T) {
	lx := emotion.Lexicon{emotion.Joy: {
		{Term: "嬉しい", Weight: 3.0},
		{Term: "楽しい", Weight: 2.0},
		{Term: "幸せ", Weight: 1.5},
		{Term: "最高", Weight: 1.2},
		{Term: "笑", Weight: 1.0},
	}}
	res := emotion.NewAnalyzer().Analyze("嬉しい楽しい幸せ最高笑", lx, false)
	it := NewItem(time.Now(), "嬉しい楽しい幸せ最高笑", res, "lex")

	terms := it.TopTerms[emotion.Joy]
	if len(terms) != 3 {
		t.Fatalf("top terms = %d, want 3", len(terms))
	}
	if terms[0].Term != "嬉しい" {
		t.Errorf("strongest term = %q, want 嬉しい", terms[0].Term)
	}
	for i := 1; i < len(terms); i++ {
		if terms[i].Value > terms[i-1].Value {
			t.Error("top terms are not sorted by value")
		}
	}
}
