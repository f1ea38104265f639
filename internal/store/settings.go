package store

import (
	"fmt"
	"slices"
	"sync"

	apperrors "research-agent/client/internal/errors"
	"research-agent/client/internal/model"
)

// Option lists for the chat settings. The server rejects values outside
// these sets, so the store enforces them before a request is ever built.
var (
	ModelOptions         = []string{"gpt-5", "gpt-5.2"}
	VerbosityOptions     = []string{"minimal", "normal", "detailed"}
	ThinkingLevelOptions = []string{"low", "medium", "high"}
)

const (
	DefaultModel         = "gpt-5.2"
	DefaultVerbosity     = "normal"
	DefaultThinkingLevel = "medium"
)

// SettingsStore holds the user-chosen generation settings. Pure in-memory
// state: nothing here survives a restart, and no network calls are made.
type SettingsStore struct {
	mu               sync.RWMutex
	model            string
	verbosity        string
	thinkingLevel    string
	roleProfile      string
	knowledgeProfile string
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		model:         DefaultModel,
		verbosity:     DefaultVerbosity,
		thinkingLevel: DefaultThinkingLevel,
	}
}

func (s *SettingsStore) SetModel(value string) error {
	if !slices.Contains(ModelOptions, value) {
		return fmt.Errorf("%w: unknown model %q", apperrors.ErrValidation, value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = value
	return nil
}

func (s *SettingsStore) SetVerbosity(value string) error {
	if !slices.Contains(VerbosityOptions, value) {
		return fmt.Errorf("%w: unknown verbosity %q", apperrors.ErrValidation, value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verbosity = value
	return nil
}

func (s *SettingsStore) SetThinkingLevel(value string) error {
	if !slices.Contains(ThinkingLevelOptions, value) {
		return fmt.Errorf("%w: unknown thinking level %q", apperrors.ErrValidation, value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thinkingLevel = value
	return nil
}

// SetRoleProfile sets the free-text description of who the assistant should
// act as. No validation; empty clears it.
func (s *SettingsStore) SetRoleProfile(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roleProfile = value
}

// SetKnowledgeProfile sets the free-text description of the user's prior
// knowledge. No validation; empty clears it.
func (s *SettingsStore) SetKnowledgeProfile(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knowledgeProfile = value
}

func (s *SettingsStore) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

func (s *SettingsStore) Verbosity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.verbosity
}

func (s *SettingsStore) ThinkingLevel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.thinkingLevel
}

// Snapshot returns the settings payload sent with every chat request.
// Web search is always on.
func (s *SettingsStore) Snapshot() model.ChatSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.ChatSettings{
		Model:            s.model,
		Verbosity:        s.verbosity,
		ThinkingLevel:    s.thinkingLevel,
		RoleProfile:      s.roleProfile,
		KnowledgeProfile: s.knowledgeProfile,
		WebSearch:        true,
	}
}
