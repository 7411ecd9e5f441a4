package session

import (
	"context"
	"errors"
	"sync"

	"pricing-bot/internal/render"
	"pricing-bot/internal/theme"
	"pricing-bot/internal/viewstate"
)

// Session is the per-chat presentation state. An empty Theme or Layout
// means "use the default".
type Session struct {
	State     viewstate.State `json:"state"`
	Theme     theme.Theme     `json:"theme,omitempty"`
	Layout    render.Layout   `json:"layout,omitempty"`
	MessageID int             `json:"message_id,omitempty"`
}

// New returns a session on the selection screen.
func New() Session {
	return Session{State: viewstate.New().State()}
}

var ErrNotFound = errors.New("session not found")

type Store interface {
	Get(ctx context.Context, chatID int64) (Session, error)
	Save(ctx context.Context, chatID int64, s Session) error
	Delete(ctx context.Context, chatID int64) error
}

// MemoryStore keeps sessions for the life of the process.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]Session)}
}

func (m *MemoryStore) Get(_ context.Context, chatID int64) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[chatID]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Save(_ context.Context, chatID int64, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[chatID] = s
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, chatID)
	return nil
}
