package client

import (
	"sync"
	"time"

	"fitclub-backend/internal/models"
)

// Snapshot is the admin dashboard's full working set.
type Snapshot struct {
	Members  []models.Member
	Trainers []models.Trainer
	Packages []models.Package
	Gallery  []models.GalleryItem
	Branches []models.Branch
	Contacts []models.ContactSubmission
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Members:  append([]models.Member(nil), s.Members...),
		Trainers: append([]models.Trainer(nil), s.Trainers...),
		Packages: append([]models.Package(nil), s.Packages...),
		Gallery:  append([]models.GalleryItem(nil), s.Gallery...),
		Branches: append([]models.Branch(nil), s.Branches...),
		Contacts: append([]models.ContactSubmission(nil), s.Contacts...),
	}
}

// RefreshResult reports the outcome of a fan-out fetch. A failed entity keeps
// its previous slice; the error is recorded here instead of aborting the rest.
// Callers cannot otherwise distinguish "zero records" from "fetch failed" —
// a known limitation carried over deliberately.
type RefreshResult struct {
	Errors map[string]error
}

func (r RefreshResult) OK() bool { return len(r.Errors) == 0 }

// Store caches the admin working set. Mutations go through Do: applied to the
// local snapshot first, rolled back if the server rejects them, and followed
// by a full refresh on success so server-assigned ids and derived fields win
// over the optimistic local shape.
type Store struct {
	client *Client

	mu         sync.Mutex
	snap       Snapshot
	lastSynced time.Time
	syncing    bool
}

func NewStore(c *Client) *Store {
	return &Store{client: c}
}

// Refresh fetches all six entity lists concurrently and waits for all of
// them. Partial failure is tolerated: each failed fetch leaves that entity's
// previous value in place.
func (s *Store) Refresh() RefreshResult {
	s.mu.Lock()
	s.syncing = true
	s.mu.Unlock()

	result := RefreshResult{Errors: map[string]error{}}
	var (
		wg sync.WaitGroup
		mu sync.Mutex // guards result and the fetched values

		members  []models.Member
		trainers []models.Trainer
		packages []models.Package
		gallery  []models.GalleryItem
		branches []models.Branch
		contacts []models.ContactSubmission

		fetched = map[string]bool{}
	)

	fetch := func(name string, f func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors[name] = err
			} else {
				fetched[name] = true
			}
		}()
	}

	fetch("members", func() (err error) { members, err = s.client.Members(); return })
	fetch("trainers", func() (err error) { trainers, err = s.client.Trainers(); return })
	fetch("packages", func() (err error) { packages, err = s.client.Packages(); return })
	fetch("gallery", func() (err error) { gallery, err = s.client.Gallery(); return })
	fetch("branches", func() (err error) { branches, err = s.client.Branches(); return })
	fetch("contacts", func() (err error) { contacts, err = s.client.Contacts(); return })
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if fetched["members"] {
		s.snap.Members = members
	}
	if fetched["trainers"] {
		s.snap.Trainers = trainers
	}
	if fetched["packages"] {
		s.snap.Packages = packages
	}
	if fetched["gallery"] {
		s.snap.Gallery = gallery
	}
	if fetched["branches"] {
		s.snap.Branches = branches
	}
	if fetched["contacts"] {
		s.snap.Contacts = contacts
	}
	s.lastSynced = time.Now()
	s.syncing = false

	return result
}

// Do runs one optimistic mutation. The command mutates the local snapshot
// immediately; if the remote call fails the snapshot captured beforehand is
// restored and the outcome is RolledBack with the failure reason.
func (s *Store) Do(cmd Command) Outcome {
	s.mu.Lock()
	before := s.snap.clone()
	cmd.apply(&s.snap)
	s.syncing = true
	s.mu.Unlock()

	if err := cmd.send(s.client); err != nil {
		s.mu.Lock()
		s.snap = before
		s.syncing = false
		s.mu.Unlock()
		return Outcome{Kind: RolledBack, Reason: err.Error()}
	}

	// Trust the server, not the optimistic shape.
	s.Refresh()
	return Outcome{Kind: Applied}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.clone()
}

func (s *Store) LastSynced() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSynced
}

func (s *Store) Syncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}
