package store

import (
	"sync"
	"time"
)

type memoryStore struct {
	ttl           time.Duration
	sessions      map[string]*Session
	byCorrelation map[string]string
	mu            sync.Mutex

	nowFunc func() time.Time
}

func NewMemoryStore(ttl time.Duration) *memoryStore {
	return &memoryStore{
		ttl:           ttl,
		sessions:      make(map[string]*Session),
		byCorrelation: make(map[string]string),
	}
}

func (m *memoryStore) now() time.Time {
	if m.nowFunc != nil {
		return m.nowFunc()
	}
	return time.Now()
}

func (m *memoryStore) expired(s *Session, now time.Time) bool {
	return now.Sub(s.createdAt) >= m.ttl
}

// purgeLocked removes a session from both indexes. Callers must hold mu.
func (m *memoryStore) purgeLocked(s *Session) {
	delete(m.sessions, s.DeviceCode)
	delete(m.byCorrelation, s.CorrelationID)
}

func (m *memoryStore) Create(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	// A key held by an expired-but-unswept session is free to reuse.
	if prev, ok := m.sessions[s.DeviceCode]; ok {
		if !m.expired(prev, now) {
			return ErrConflict
		}
		m.purgeLocked(prev)
	}
	if code, ok := m.byCorrelation[s.CorrelationID]; ok {
		prev := m.sessions[code]
		if !m.expired(prev, now) {
			return ErrConflict
		}
		m.purgeLocked(prev)
	}

	stored := *s
	stored.Status = StatusPending
	stored.Token = nil
	stored.createdAt = now
	m.sessions[stored.DeviceCode] = &stored
	m.byCorrelation[stored.CorrelationID] = stored.DeviceCode
	return nil
}

func (m *memoryStore) LookupByDeviceCode(deviceCode string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[deviceCode]
	if !ok {
		return Session{}, ErrNotFound
	}
	if m.expired(s, m.now()) {
		m.purgeLocked(s)
		return Session{}, ErrNotFound
	}
	return *s, nil
}

func (m *memoryStore) LookupByCorrelation(correlationID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	code, ok := m.byCorrelation[correlationID]
	if !ok {
		return Session{}, ErrNotFound
	}
	s := m.sessions[code]
	if m.expired(s, m.now()) {
		m.purgeLocked(s)
		return Session{}, ErrNotFound
	}
	return *s, nil
}

func (m *memoryStore) CompleteByCorrelation(correlationID string, token *Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	code, ok := m.byCorrelation[correlationID]
	if !ok {
		return ErrNotFound
	}
	s := m.sessions[code]
	if m.expired(s, m.now()) {
		m.purgeLocked(s)
		return ErrNotFound
	}
	if s.Status == StatusAuthorized {
		return ErrAlreadyCompleted
	}

	// Status and token flip together under the lock so a concurrent Get
	// never observes a torn Authorized record.
	s.Token = token
	s.Status = StatusAuthorized
	return nil
}

func (m *memoryStore) Get(deviceCode string) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[deviceCode]
	if !ok {
		return Outcome{Status: OutcomeUnknown}
	}
	if m.expired(s, m.now()) {
		m.purgeLocked(s)
		return Outcome{Status: OutcomeUnknown}
	}
	if s.Status == StatusAuthorized {
		return Outcome{Status: OutcomeReady, Token: s.Token}
	}
	return Outcome{Status: OutcomePending}
}

func (m *memoryStore) Sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		if m.expired(s, now) {
			m.purgeLocked(s)
		}
	}
}

func (m *memoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
