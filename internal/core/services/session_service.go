package services

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

const commitTimeout = 3 * time.Second

// SessionManager owns the live workout sessions. Each session is
// driven by its own one-second ticker goroutine; closing a session or
// shutting down stops the ticker so no callback outlives its session.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*liveSession
	progress *ProgressService
	rng      *rand.Rand
	interval time.Duration
}

type liveSession struct {
	userID    string
	session   *domain.Session
	stop      chan struct{}
	stopped   bool
	committed bool
}

func NewSessionManager(progress *ProgressService, rng *rand.Rand, tickInterval time.Duration) *SessionManager {
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	return &SessionManager{
		sessions: make(map[string]*liveSession),
		progress: progress,
		rng:      rng,
		interval: tickInterval,
	}
}

// Start creates a session for the plan, begins the ready countdown and
// launches its ticker.
func (m *SessionManager) Start(userID string, plan domain.WorkoutPlan) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := domain.NewSession(plan, m.rng)
	if err := session.Start(); err != nil {
		return domain.Session{}, err
	}

	live := &liveSession{
		userID:  userID,
		session: session,
		stop:    make(chan struct{}),
	}
	m.sessions[session.ID] = live

	go m.run(live)

	return *session, nil
}

// Get returns a point-in-time copy of the session state.
func (m *SessionManager) Get(sessionID, userID string) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	live, err := m.find(sessionID, userID)
	if err != nil {
		return domain.Session{}, err
	}
	return *live.session, nil
}

// TogglePause flips the running flag without touching the countdown.
func (m *SessionManager) TogglePause(sessionID, userID string) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	live, err := m.find(sessionID, userID)
	if err != nil {
		return domain.Session{}, err
	}
	live.session.TogglePause()
	return *live.session, nil
}

// Skip advances past the current exercise or rest immediately;
// skipping from the last exercise completes the session.
func (m *SessionManager) Skip(sessionID, userID string) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	live, err := m.find(sessionID, userID)
	if err != nil {
		return domain.Session{}, err
	}
	live.session.Skip()
	m.finishIfComplete(live)
	return *live.session, nil
}

// Close aborts the session, stopping its ticker. A session closed
// before completion writes no record.
func (m *SessionManager) Close(sessionID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	live, err := m.find(sessionID, userID)
	if err != nil {
		return err
	}
	m.halt(live)
	delete(m.sessions, sessionID)
	return nil
}

// Shutdown stops every live ticker. Running sessions are discarded.
func (m *SessionManager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, live := range m.sessions {
		m.halt(live)
		delete(m.sessions, id)
	}
}

func (m *SessionManager) run(live *liveSession) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-live.stop:
			return
		case <-ticker.C:
			m.mu.Lock()
			live.session.Tick()
			m.finishIfComplete(live)
			m.mu.Unlock()
		}
	}
}

// finishIfComplete commits the completion record exactly once and
// stops the ticker. Callers hold m.mu.
func (m *SessionManager) finishIfComplete(live *liveSession) {
	if live.session.Phase != domain.PhaseComplete {
		return
	}
	if !live.committed && live.session.Record != nil {
		live.committed = true
		ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		defer cancel()
		if _, err := m.progress.LogWorkout(ctx, live.userID, *live.session.Record); err != nil {
			log.Printf("Failed to log completed workout %s: %v", live.session.Record.ID, err)
		}
	}
	m.halt(live)
}

func (m *SessionManager) halt(live *liveSession) {
	if !live.stopped {
		live.stopped = true
		close(live.stop)
	}
}

func (m *SessionManager) find(sessionID, userID string) (*liveSession, error) {
	live, ok := m.sessions[sessionID]
	if !ok || live.userID != userID {
		return nil, domain.ErrSessionNotFound
	}
	return live, nil
}
