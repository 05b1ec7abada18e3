package state

import (
	"sync"

	"github.com/travelog/backend/internal/application"
	"github.com/travelog/backend/internal/domain/entity"
)

// Draft is a not-yet-persisted entry candidate: coordinates from a map click,
// optionally pre-filled city/country from reverse geocoding.
type Draft struct {
	Lat     float64
	Lng     float64
	City    string
	Country string
}

// LatLng is a map viewport center.
type LatLng struct {
	Lat float64
	Lng float64
}

// Snapshot is an immutable view of the store handed to subscribers.
type Snapshot struct {
	Entries         []*entity.JournalEntry
	Countries       []string
	SelectedCountry string
	Selected        *entity.JournalEntry
	Draft           *Draft
	MapCenter       LatLng
}

// Store is the single in-process mirror of the current user's journal for a
// map/sidebar/detail UI. It never performs I/O; callers feed it the results of
// server round trips. The selection and the pending draft are mutually
// exclusive, so the UI shows exactly one of {entry detail, draft form, empty}.
type Store struct {
	mu sync.Mutex

	entries         []*entity.JournalEntry
	countries       []string
	selectedCountry string
	selected        *entity.JournalEntry
	draft           *Draft
	mapCenter       LatLng

	subs    map[int]func(Snapshot)
	nextSub int
}

func NewStore() *Store {
	return &Store{
		entries:   []*entity.JournalEntry{},
		countries: []string{},
		mapCenter: LatLng{Lat: 20, Lng: 0},
		subs:      map[int]func(Snapshot){},
	}
}

// Subscribe registers a callback fired after every transition. The returned
// function unsubscribes.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// View returns the current snapshot.
func (s *Store) View() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SetEntries replaces the mirror with a fresh server list result.
func (s *Store) SetEntries(entries []*entity.JournalEntry, countries []string) {
	s.transition(func() {
		s.entries = entries
		s.countries = append([]string(nil), countries...)
	})
}

// SetSelectedCountry sets the sidebar country filter; empty clears it.
func (s *Store) SetSelectedCountry(country string) {
	s.transition(func() {
		s.selectedCountry = country
	})
}

// SelectEntry focuses an entry and clears any pending draft. A nil entry
// clears the selection (empty state).
func (s *Store) SelectEntry(e *entity.JournalEntry) {
	s.transition(func() {
		s.selected = e
		s.draft = nil
	})
}

// SetPendingDraft starts a new-entry draft and clears the selection. A nil
// draft discards the form.
func (s *Store) SetPendingDraft(d *Draft) {
	s.transition(func() {
		s.draft = d
		s.selected = nil
	})
}

// SetMapCenter moves the viewport.
func (s *Store) SetMapCenter(center LatLng) {
	s.transition(func() {
		s.mapCenter = center
	})
}

// AddEntry applies a successful create: prepend newest-first, recompute the
// country list, and discard the draft the entry came from.
func (s *Store) AddEntry(e *entity.JournalEntry) {
	s.transition(func() {
		s.entries = append([]*entity.JournalEntry{e}, s.entries...)
		s.countries = application.DistinctCountries(s.entries)
		s.draft = nil
	})
}

// ApplyUpdated applies a successful update: replace in place and focus the
// updated entry.
func (s *Store) ApplyUpdated(e *entity.JournalEntry) {
	s.transition(func() {
		for i, item := range s.entries {
			if item.ID == e.ID {
				s.entries[i] = e
			}
		}
		s.countries = application.DistinctCountries(s.entries)
		s.selected = e
	})
}

// RemoveEntry applies a successful delete: drop the entry, recompute the
// country list, and clear the selection if the removed entry was selected.
func (s *Store) RemoveEntry(id int64) {
	s.transition(func() {
		kept := s.entries[:0]
		for _, e := range s.entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.entries = kept
		s.countries = application.DistinctCountries(s.entries)
		if s.selected != nil && s.selected.ID == id {
			s.selected = nil
		}
	})
}

func (s *Store) transition(mutate func()) {
	s.mu.Lock()
	mutate()
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Entries:         append([]*entity.JournalEntry(nil), s.entries...),
		Countries:       append([]string(nil), s.countries...),
		SelectedCountry: s.selectedCountry,
		Selected:        s.selected,
		Draft:           s.draft,
		MapCenter:       s.mapCenter,
	}
}
