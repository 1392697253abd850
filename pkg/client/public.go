package client

import (
	"sync"
	"time"

	"fitclub-backend/internal/models"
)

// PublicStore is the read-only cache behind the marketing pages: trainers,
// packages and the gallery. No mutations, no auth.
type PublicStore struct {
	client *Client

	mu         sync.Mutex
	trainers   []models.Trainer
	packages   []models.Package
	gallery    []models.GalleryItem
	lastSynced time.Time
	loaded     bool
}

func NewPublicStore(c *Client) *PublicStore {
	return &PublicStore{client: c}
}

// Refresh fetches the three public lists concurrently. Like the admin store,
// a failed fetch keeps the previous slice and is reported, not fatal.
func (s *PublicStore) Refresh() RefreshResult {
	result := RefreshResult{Errors: map[string]error{}}
	var (
		wg sync.WaitGroup
		mu sync.Mutex

		trainers []models.Trainer
		packages []models.Package
		gallery  []models.GalleryItem

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

	fetch("trainers", func() (err error) { trainers, err = s.client.Trainers(); return })
	fetch("packages", func() (err error) { packages, err = s.client.Packages(); return })
	fetch("gallery", func() (err error) { gallery, err = s.client.Gallery(); return })
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if fetched["trainers"] {
		s.trainers = trainers
	}
	if fetched["packages"] {
		s.packages = packages
	}
	if fetched["gallery"] {
		s.gallery = gallery
	}
	s.lastSynced = time.Now()
	s.loaded = true
	return result
}

func (s *PublicStore) Trainers() []models.Trainer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Trainer(nil), s.trainers...)
}

func (s *PublicStore) Packages() []models.Package {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Package(nil), s.packages...)
}

func (s *PublicStore) Gallery() []models.GalleryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.GalleryItem(nil), s.gallery...)
}

func (s *PublicStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *PublicStore) LastSynced() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSynced
}
