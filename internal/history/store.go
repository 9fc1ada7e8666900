package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// DefaultMaxRetained is the retention cap applied when none is configured.
const DefaultMaxRetained = 500

var (
	// ErrDuplicate means the item's content hash is already present.
	ErrDuplicate = errors.New("duplicate history item")
	// ErrNotFound means no item carries the requested id.
	ErrNotFound = errors.New("history item not found")
	// ErrPinned means the operation is blocked by the item's pin.
	ErrPinned = errors.New("history item is pinned")
)

// Store is the ordered in-memory history list, oldest first. Duplicate
// suppression uses a full-history hash set, so a text is stored at most
// once no matter how far back its twin sits.
type Store struct {
	mu          sync.Mutex
	items       []Item
	hashes      map[string]struct{}
	maxRetained int
}

// NewStore returns an empty store with the given retention cap.
// A cap of zero or less falls back to DefaultMaxRetained.
func NewStore(maxRetained int) *Store {
	if maxRetained <= 0 {
		maxRetained = DefaultMaxRetained
	}
	return &Store{
		hashes:      make(map[string]struct{}),
		maxRetained: maxRetained,
	}
}

// Append adds an item unless its content hash is already stored, then
// enforces the retention cap. Pinned items are never evicted; if only
// pinned items remain the list is allowed to exceed the cap.
func (s *Store) Append(it Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := it.Hash()
	if _, dup := s.hashes[h]; dup {
		return ErrDuplicate
	}
	s.items = append(s.items, it)
	s.hashes[h] = struct{}{}
	s.evictLocked()
	return nil
}

// evictLocked removes oldest unpinned items while over the cap.
func (s *Store) evictLocked() {
	for len(s.items) > s.maxRetained {
		victim := -1
		for i, it := range s.items {
			if !it.Pinned {
				victim = i
				break
			}
		}
		if victim < 0 {
			return
		}
		delete(s.hashes, s.items[victim].Hash())
		s.items = append(s.items[:victim], s.items[victim+1:]...)
	}
}

// Items returns a copy of the list, oldest first.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// SetPinned toggles the pin flag on one item.
func (s *Store) SetPinned(id string, pinned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Pinned = pinned
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes one item by id. Deleting a pinned item is refused
// with ErrPinned; the caller must unpin first.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID != id {
			continue
		}
		if it.Pinned {
			return ErrPinned
		}
		delete(s.hashes, it.Hash())
		s.items = append(s.items[:i], s.items[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// Clear removes every unpinned item and reports how many were removed.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	removed := 0
	for _, it := range s.items {
		if it.Pinned {
			kept = append(kept, it)
			continue
		}
		delete(s.hashes, it.Hash())
		removed++
	}
	s.items = kept
	return removed
}

// Export serializes the whole ordered list as a JSON array.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.items, "", "  ")
}

// importProbe checks the fields every imported element must carry as
// strings. A pointer stays nil when the field is absent; a non-string
// value fails unmarshalling outright.
type importProbe struct {
	ID       *string `json:"id"`
	TS       *string `json:"ts"`
	FullText *string `json:"fullText"`
}

// Import replaces the whole list with the payload. Validation is
// all-or-nothing: every element must carry string-typed id, ts and
// fullText, otherwise the payload is rejected and the store unchanged.
func (s *Store) Import(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("history payload is not a JSON array: %w", err)
	}
	for i, el := range raw {
		var probe importProbe
		if err := json.Unmarshal(el, &probe); err != nil {
			return fmt.Errorf("history item %d is malformed: %w", i, err)
		}
		if probe.ID == nil || probe.TS == nil || probe.FullText == nil {
			return fmt.Errorf("history item %d is missing id, ts or fullText", i)
		}
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse history payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.hashes = make(map[string]struct{}, len(items))
	for _, it := range items {
		s.hashes[it.Hash()] = struct{}{}
	}
	return nil
}

// Replace swaps in an already-validated list, used when loading
// persisted state on startup.
func (s *Store) Replace(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]Item(nil), items...)
	s.hashes = make(map[string]struct{}, len(items))
	for _, it := range items {
		s.hashes[it.Hash()] = struct{}{}
	}
}
