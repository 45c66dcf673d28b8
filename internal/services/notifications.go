package services

import (
	"sync"
	"time"

	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/Renal37/order-dashboard/internal/utils"
	"github.com/google/uuid"
)

// NotificationStore keeps user-facing events, most recent first. Entries live
// until they are dismissed or the store is cleared.
type NotificationStore struct {
	mu    sync.RWMutex
	items []models.Notification

	now   func() time.Time
	newID func() string
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{
		items: make([]models.Notification, 0),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Add fills in the id, type and timestamp when missing and prepends the entry.
// An entry with the same message and timestamp as an existing one is dropped;
// the second return value reports whether the entry was stored.
func (s *NotificationStore) Add(n models.Notification) (models.Notification, bool) {
	if n.ID == "" {
		n.ID = s.newID()
	}

	if n.Type == "" {
		n.Type = models.NotificationInfo
	}

	if n.Timestamp.IsZero() {
		n.Timestamp = utils.NewTimestamp(s.now())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.SameEvent(n) {
			return existing, false
		}
	}

	s.items = append([]models.Notification{n}, s.items...)

	return n, true
}

// Dismiss removes the entry with the given id. It reports whether one was found.
func (s *NotificationStore) Dismiss(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.items {
		if n.ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}

	return false
}

func (s *NotificationStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]models.Notification, 0)
}

func (s *NotificationStore) List() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(make([]models.Notification, 0, len(s.items)), s.items...)
}

func (s *NotificationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
