package core

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Download is a retained local copy of a processed batch.
type Download struct {
	Name        string
	ContentType string
	Data        []byte

	expires time.Time
}

// ErrDownloadNotFound covers both unknown and expired download IDs.
var ErrDownloadNotFound = errors.New("download not found or expired")

// downloadStore retains processed local copies in memory until they
// expire. Expired entries are swept whenever a new copy is stored.
type downloadStore struct {
	mu        sync.Mutex
	retention time.Duration
	items     map[string]Download
}

func newDownloadStore(retention time.Duration) *downloadStore {
	return &downloadStore{
		retention: retention,
		items:     make(map[string]Download),
	}
}

// Put stores a copy and returns its ID.
func (s *downloadStore) Put(d Download, now time.Time) string {
	id := uuid.NewString()
	d.expires = now.Add(s.retention)

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.items {
		if now.After(v.expires) {
			delete(s.items, k)
		}
	}
	s.items[id] = d
	return id
}

// Get retrieves a copy by ID.
func (s *downloadStore) Get(id string, now time.Time) (Download, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.items[id]
	if !ok || now.After(d.expires) {
		return Download{}, ErrDownloadNotFound
	}
	return d, nil
}
