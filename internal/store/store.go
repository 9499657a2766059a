package store

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"strconv"
	"sync"
)

var ErrDuplicateID = errors.New("job posting id already exists")

type IDStrategy string

const (
	SequentialIDs IDStrategy = "sequential"
	UUIDs         IDStrategy = "uuid"
)

func ToIDStrategy(s string) (IDStrategy, error) {
	switch IDStrategy(s) {
	case SequentialIDs, "":
		return SequentialIDs, nil
	case UUIDs:
		return UUIDs, nil
	default:
		return "", fmt.Errorf("invalid id strategy: %v", s)
	}
}

// Store keeps postings newest first. Inserts are serialized; readers get copies.
type Store struct {
	mu       sync.RWMutex
	postings []models.JobPosting
	ids      map[string]struct{}
	strategy IDStrategy
	lastID   int
}

func New(strategy IDStrategy) *Store {
	return &Store{ids: make(map[string]struct{}), strategy: strategy}
}

// Load replaces the store contents, keeping the given order.
func (s *Store) Load(postings []models.JobPosting) error {
	ids := make(map[string]struct{}, len(postings))
	loaded := make([]models.JobPosting, 0, len(postings))
	lastID := 0

	for _, posting := range postings {
		if posting.ID == "" {
			return &models.ValidationError{Field: "id", Reason: "loaded postings must carry an id"}
		}
		if _, exists := ids[posting.ID]; exists {
			return errors.Wrapf(ErrDuplicateID, "id %s", posting.ID)
		}
		if err := posting.Validate(); err != nil {
			return errors.Wrapf(err, "posting %s", posting.ID)
		}
		ids[posting.ID] = struct{}{}
		loaded = append(loaded, posting.Clone())
		if n, err := strconv.Atoi(posting.ID); err == nil && n > lastID {
			lastID = n
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.postings = loaded
	s.ids = ids
	s.lastID = lastID
	return nil
}

// Insert prepends the posting and returns its id, generating one when the posting has none.
func (s *Store) Insert(posting models.JobPosting) (string, error) {
	if err := posting.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if posting.ID == "" {
		posting.ID = s.nextID()
	} else if _, exists := s.ids[posting.ID]; exists {
		return "", errors.Wrapf(ErrDuplicateID, "id %s", posting.ID)
	} else if n, err := strconv.Atoi(posting.ID); err == nil && n > s.lastID {
		s.lastID = n
	}

	s.ids[posting.ID] = struct{}{}
	s.postings = append([]models.JobPosting{posting.Clone()}, s.postings...)
	return posting.ID, nil
}

func (s *Store) nextID() string {
	if s.strategy == UUIDs {
		return uuid.NewString()
	}
	for {
		s.lastID++
		id := strconv.Itoa(s.lastID)
		if _, exists := s.ids[id]; !exists {
			return id
		}
	}
}

// All returns a point-in-time deep copy of every posting in store order.
func (s *Store) All() []models.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.JobPosting, len(s.postings))
	for i, posting := range s.postings {
		snapshot[i] = posting.Clone()
	}
	return snapshot
}

func (s *Store) ByID(id string) (models.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, posting := range s.postings {
		if posting.ID == id {
			return posting.Clone(), nil
		}
	}
	return models.JobPosting{}, errors.Wrapf(models.ErrNotFound, "id %s", id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.postings)
}
