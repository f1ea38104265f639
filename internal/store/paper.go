package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"research-agent/client/internal/api"
	apperrors "research-agent/client/internal/errors"
	"research-agent/client/internal/interfaces"
	"research-agent/client/internal/model"
)

// PaperStore holds the literature references for the current project.
// Adding a paper kicks off citation generation in the background; the new
// entry is visible immediately with BibtexLoading set until the generated
// citation lands, matched back to the entry by id.
type PaperStore struct {
	mu       sync.RWMutex
	backend  interfaces.PaperAPI
	projects *ProjectStore
	papers   []model.Paper
	loading  bool
	bg       sync.WaitGroup
}

func NewPaperStore(backend interfaces.PaperAPI, projects *ProjectStore) *PaperStore {
	return &PaperStore{backend: backend, projects: projects}
}

// Fetch replaces the paper list for the current project. A no-op without a
// selected project; list errors are logged and swallowed.
func (s *PaperStore) Fetch(ctx context.Context) {
	projectID, ok := s.projects.CurrentID()
	if !ok {
		return
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	list, err := s.backend.ListPapers(ctx, projectID)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		slog.Error("Failed to fetch papers", "error", err)
		return
	}
	s.papers = list
	s.mu.Unlock()
}

// Add creates a paper in the current project and returns it immediately
// with BibtexLoading set; citation generation continues in the background.
func (s *PaperStore) Add(ctx context.Context, draft *api.PaperDraft) (*model.Paper, error) {
	projectID, ok := s.projects.CurrentID()
	if !ok {
		return nil, apperrors.ErrNoProject
	}

	paper, err := s.backend.CreatePaper(ctx, projectID, draft)
	if err != nil {
		slog.Error("Failed to add paper", "error", err)
		return nil, err
	}
	paper.BibtexLoading = true

	s.mu.Lock()
	s.papers = append([]model.Paper{*paper}, s.papers...)
	s.mu.Unlock()

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		// Detached from the caller's context: generation should finish even
		// if the triggering action is long gone.
		s.GenerateBibtex(context.WithoutCancel(ctx), paper.ID)
	}()

	result := *paper
	return &result, nil
}

// GenerateBibtex fetches the generated citation and applies it to the list
// entry with the same id. Failures only clear the loading flag.
func (s *PaperStore) GenerateBibtex(ctx context.Context, id int64) {
	bibtex, err := s.backend.GenerateBibtex(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.papers {
		if s.papers[i].ID != id {
			continue
		}
		if err != nil {
			slog.Error("Failed to generate bibtex", "paper_id", id, "error", err)
			s.papers[i].BibtexLoading = false
			return
		}
		s.papers[i].Bibtex = bibtex
		s.papers[i].BibtexLoading = false
		return
	}
	if err != nil {
		slog.Error("Failed to generate bibtex", "paper_id", id, "error", err)
	}
}

// Update patches a paper server-side and replaces the local entry with the
// server's version.
func (s *PaperStore) Update(ctx context.Context, id int64, updates map[string]any) (*model.Paper, error) {
	paper, err := s.backend.UpdatePaper(ctx, id, updates)
	if err != nil {
		slog.Error("Failed to update paper", "paper_id", id, "error", err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.papers {
		if s.papers[i].ID == id {
			s.papers[i] = *paper
			break
		}
	}
	s.mu.Unlock()
	return paper, nil
}

func (s *PaperStore) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeletePaper(ctx, id); err != nil {
		slog.Error("Failed to delete paper", "paper_id", id, "error", err)
		return err
	}

	s.mu.Lock()
	kept := s.papers[:0]
	for _, p := range s.papers {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.papers = kept
	s.mu.Unlock()
	return nil
}

// ToggleContext flips whether the paper is included in chat context.
func (s *PaperStore) ToggleContext(ctx context.Context, id int64) error {
	s.mu.RLock()
	var inContext bool
	found := false
	for _, p := range s.papers {
		if p.ID == id {
			inContext = p.InContext
			found = true
			break
		}
	}
	s.mu.RUnlock()

	if !found {
		return fmt.Errorf("%w: paper %d", apperrors.ErrNotFound, id)
	}
	_, err := s.Update(ctx, id, map[string]any{"inContext": !inContext})
	return err
}

// Copy duplicates a paper into the target project. When the target is the
// current project the copy is added to the local list as well.
func (s *PaperStore) Copy(ctx context.Context, id, targetProjectID int64) (*model.Paper, error) {
	paper, err := s.backend.CopyPaper(ctx, id, targetProjectID)
	if err != nil {
		slog.Error("Failed to copy paper", "paper_id", id, "error", err)
		return nil, err
	}

	if currentID, ok := s.projects.CurrentID(); ok && currentID == targetProjectID {
		s.mu.Lock()
		s.papers = append([]model.Paper{*paper}, s.papers...)
		s.mu.Unlock()
	}
	return paper, nil
}

func (s *PaperStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.papers = nil
}

func (s *PaperStore) Papers() []model.Paper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Paper, len(s.papers))
	copy(out, s.papers)
	return out
}

func (s *PaperStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// WaitBackground blocks until in-flight citation generation finishes.
// Used on shutdown so background work is not cut off mid-request.
func (s *PaperStore) WaitBackground() {
	s.bg.Wait()
}
