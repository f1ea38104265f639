package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	apperrors "research-agent/client/internal/errors"
	"research-agent/client/internal/interfaces"
	"research-agent/client/internal/model"
)

// currentProjectKey is the durable-storage key for the selected project id.
const currentProjectKey = "current_project_id"

// StatePersister is the durable storage used for the selected project id.
// The sqlite-backed localstate.Store satisfies it.
type StatePersister interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// ProjectStore holds the project list and the single current project that
// scopes conversations and papers. Selection changes are broadcast to
// registered observers, which is how dependent stores learn to clear and
// reload their scoped state.
type ProjectStore struct {
	mu       sync.RWMutex
	backend  interfaces.ProjectAPI
	state    StatePersister
	projects []model.Project
	current  *model.Project
	loading  bool
	lastErr  error
	subs     []func(context.Context, *model.Project)
}

func NewProjectStore(backend interfaces.ProjectAPI, state StatePersister) *ProjectStore {
	return &ProjectStore{backend: backend, state: state}
}

// Fetch replaces the project list. When nothing is selected yet it restores
// the persisted selection if that project still exists, else falls back to
// the first project. List errors are recorded and logged, never thrown; the
// previous list stays visible as a degraded state.
func (s *ProjectStore) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	list, err := s.backend.ListProjects(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		slog.Error("Failed to fetch projects", "error", err)
		return
	}
	s.projects = list

	var selected *model.Project
	if s.current == nil && len(list) > 0 {
		pick := list[0]
		if savedID, ok := s.restoreSavedID(ctx); ok {
			for _, p := range list {
				if p.ID == savedID {
					pick = p
					break
				}
			}
		}
		s.current = &pick
		selection := pick
		selected = &selection
	}
	s.mu.Unlock()

	if selected != nil {
		s.notify(ctx, selected)
	}
}

// Create adds a project and makes it current.
func (s *ProjectStore) Create(ctx context.Context, name, description string) (*model.Project, error) {
	project, err := s.backend.CreateProject(ctx, name, description)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.lastErr = nil
	s.projects = append(s.projects, *project)
	selection := *project
	s.current = &selection
	s.mu.Unlock()

	s.persist(ctx, project.ID)
	notified := *project
	s.notify(ctx, &notified)
	return project, nil
}

// Delete removes a project. When the current project is deleted the
// selection falls back to the first remaining project, or to none.
func (s *ProjectStore) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteProject(ctx, id); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.lastErr = nil
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept

	wasCurrent := s.current != nil && s.current.ID == id
	var fallback *model.Project
	if wasCurrent {
		s.current = nil
		if len(s.projects) > 0 {
			pick := s.projects[0]
			s.current = &pick
			selection := pick
			fallback = &selection
		}
	}
	s.mu.Unlock()

	if wasCurrent {
		if fallback != nil {
			s.persist(ctx, fallback.ID)
		}
		s.notify(ctx, fallback)
	}
	return nil
}

// Select makes the given project current and persists the choice.
func (s *ProjectStore) Select(ctx context.Context, id int64) error {
	s.mu.Lock()
	var found *model.Project
	for _, p := range s.projects {
		if p.ID == id {
			selection := p
			found = &selection
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: project %d", apperrors.ErrNotFound, id)
	}
	current := *found
	s.current = &current
	s.mu.Unlock()

	s.persist(ctx, id)
	s.notify(ctx, found)
	return nil
}

// OnSelect registers an observer invoked whenever the current project
// changes. The observer receives nil when no project remains selected.
func (s *ProjectStore) OnSelect(fn func(context.Context, *model.Project)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Clear resets the in-memory state without touching durable storage, so the
// selection can be restored on the next authenticated load.
func (s *ProjectStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = nil
	s.current = nil
	s.lastErr = nil
}

func (s *ProjectStore) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Current returns a copy of the selected project, or nil.
func (s *ProjectStore) Current() *model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

// CurrentID returns the selected project id; ok is false when nothing is
// selected.
func (s *ProjectStore) CurrentID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return 0, false
	}
	return s.current.ID, true
}

func (s *ProjectStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ProjectStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *ProjectStore) restoreSavedID(ctx context.Context) (int64, bool) {
	if s.state == nil {
		return 0, false
	}
	value, ok, err := s.state.Get(ctx, currentProjectKey)
	if err != nil {
		slog.Warn("Failed to read persisted project selection", "error", err)
		return 0, false
	}
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		slog.Warn("Persisted project selection is not a valid id", "value", value)
		return 0, false
	}
	return id, true
}

func (s *ProjectStore) persist(ctx context.Context, id int64) {
	if s.state == nil {
		return
	}
	if err := s.state.Set(ctx, currentProjectKey, strconv.FormatInt(id, 10)); err != nil {
		slog.Warn("Failed to persist project selection", "error", err)
	}
}

func (s *ProjectStore) notify(ctx context.Context, project *model.Project) {
	s.mu.RLock()
	observers := make([]func(context.Context, *model.Project), len(s.subs))
	copy(observers, s.subs)
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(ctx, project)
	}
}
