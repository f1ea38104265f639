package store

import (
	"context"
	"log/slog"
	"sync"

	"research-agent/client/internal/interfaces"
	"research-agent/client/internal/model"
)

// VerificationStore caches factual-verification judgements keyed by message
// id. At most one result is stored per message; absence means the message
// has not been verified yet. Results are never evicted except by explicit
// clear.
type VerificationStore struct {
	mu        sync.RWMutex
	backend   interfaces.VerificationAPI
	results   map[model.MessageID]*model.VerificationResult
	verifying bool
	lastErr   error
}

func NewVerificationStore(backend interfaces.VerificationAPI) *VerificationStore {
	return &VerificationStore{
		backend: backend,
		results: make(map[model.MessageID]*model.VerificationResult),
	}
}

// Verify requests a judgement for the message and caches the result.
func (s *VerificationStore) Verify(ctx context.Context, messageID model.MessageID) (*model.VerificationResult, error) {
	s.mu.Lock()
	s.verifying = true
	s.lastErr = nil
	s.mu.Unlock()

	result, err := s.backend.VerifyMessage(ctx, messageID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifying = false
	if err != nil {
		s.lastErr = err
		slog.Error("Verification request failed", "message_id", messageID, "error", err)
		return nil, err
	}
	s.results[messageID] = result
	return result, nil
}

// Publish stores a judgement computed earlier, e.g. one carried inside a
// loaded transcript, so it survives conversation reloads.
func (s *VerificationStore) Publish(messageID model.MessageID, result *model.VerificationResult) {
	if result == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *result
	s.results[messageID] = &stored
}

// Get returns the cached judgement for the message, or nil.
func (s *VerificationStore) Get(messageID model.MessageID) *model.VerificationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[messageID]
	if !ok {
		return nil
	}
	out := *result
	return &out
}

func (s *VerificationStore) ClearMessage(messageID model.MessageID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, messageID)
}

func (s *VerificationStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[model.MessageID]*model.VerificationResult)
	s.lastErr = nil
}

func (s *VerificationStore) IsVerifying() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.verifying
}

func (s *VerificationStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
