package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "research-agent/client/internal/errors"
	"research-agent/client/internal/interfaces/mocks"
	"research-agent/client/internal/model"
	"research-agent/client/internal/store"
)

// memPersister is an in-memory StatePersister shared by the store tests.
type memPersister struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
}

func newMemPersister() *memPersister {
	return &memPersister{values: make(map[string]string)}
}

func (p *memPersister) Get(_ context.Context, key string) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.getErr != nil {
		return "", false, p.getErr
	}
	value, ok := p.values[key]
	return value, ok, nil
}

func (p *memPersister) Set(_ context.Context, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
	return nil
}

func (p *memPersister) stored(key string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[key]
}

func TestProjectStore_Fetch(t *testing.T) {
	ctx := context.Background()
	projects := []model.Project{
		{ID: 1, Name: "thesis"},
		{ID: 2, Name: "side quest"},
	}

	t.Run("selects first project when nothing is persisted", func(t *testing.T) {
		backend := mocks.NewMockProjectAPI(t)
		backend.On("ListProjects", ctx).Return(projects, nil).Once()
		s := store.NewProjectStore(backend, newMemPersister())

		var notified []*model.Project
		s.OnSelect(func(_ context.Context, p *model.Project) {
			notified = append(notified, p)
		})

		s.Fetch(ctx)

		require.NoError(t, s.Err())
		assert.Len(t, s.Projects(), 2)
		require.NotNil(t, s.Current())
		assert.Equal(t, int64(1), s.Current().ID)
		require.Len(t, notified, 1)
		assert.Equal(t, int64(1), notified[0].ID)
	})

	t.Run("restores the persisted selection", func(t *testing.T) {
		backend := mocks.NewMockProjectAPI(t)
		backend.On("ListProjects", ctx).Return(projects, nil).Once()
		persister := newMemPersister()
		require.NoError(t, persister.Set(ctx, "current_project_id", "2"))
		s := store.NewProjectStore(backend, persister)

		s.Fetch(ctx)

		require.NotNil(t, s.Current())
		assert.Equal(t, int64(2), s.Current().ID)
	})

	t.Run("falls back to first when the persisted project is gone", func(t *testing.T) {
		backend := mocks.NewMockProjectAPI(t)
		backend.On("ListProjects", ctx).Return(projects, nil).Once()
		persister := newMemPersister()
		require.NoError(t, persister.Set(ctx, "current_project_id", "99"))
		s := store.NewProjectStore(backend, persister)

		s.Fetch(ctx)

		require.NotNil(t, s.Current())
		assert.Equal(t, int64(1), s.Current().ID)
	})

	t.Run("keeps the previous list on error", func(t *testing.T) {
		backend := mocks.NewMockProjectAPI(t)
		backend.On("ListProjects", ctx).Return(projects, nil).Once()
		backend.On("ListProjects", ctx).Return(nil, errors.New("connection refused")).Once()
		s := store.NewProjectStore(backend, newMemPersister())

		s.Fetch(ctx)
		require.NoError(t, s.Err())

		s.Fetch(ctx)

		assert.Error(t, s.Err())
		assert.Len(t, s.Projects(), 2)
		require.NotNil(t, s.Current())
		assert.Equal(t, int64(1), s.Current().ID)
	})
}

func TestProjectStore_Select(t *testing.T) {
	ctx := context.Background()
	projects := []model.Project{
		{ID: 1, Name: "thesis"},
		{ID: 2, Name: "side quest"},
	}

	t.Run("persists and notifies", func(t *testing.T) {
		backend := mocks.NewMockProjectAPI(t)
		backend.On("ListProjects", ctx).Return(projects, nil).Once()
		persister := newMemPersister()
		s := store.NewProjectStore(backend, persister)
		s.Fetch(ctx)

		var notified []*model.Project
		s.OnSelect(func(_ context.Context, p *model.Project) {
			notified = append(notified, p)
		})

		require.NoError(t, s.Select(ctx, 2))

		require.NotNil(t, s.Current())
		assert.Equal(t, int64(2), s.Current().ID)
		assert.Equal(t, "2", persister.stored("current_project_id"))
		require.Len(t, notified, 1)
		assert.Equal(t, int64(2), notified[0].ID)
	})

	t.Run("unknown project", func(t *testing.T) {
		backend := mocks.NewMockProjectAPI(t)
		backend.On("ListProjects", ctx).Return(projects, nil).Once()
		s := store.NewProjectStore(backend, newMemPersister())
		s.Fetch(ctx)

		err := s.Select(ctx, 42)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		require.NotNil(t, s.Current())
		assert.Equal(t, int64(1), s.Current().ID)
	})
}

func TestProjectStore_Create(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockProjectAPI(t)
	backend.On("CreateProject", ctx, "new project", "desc").
		Return(&model.Project{ID: 5, Name: "new project", Description: "desc"}, nil).Once()
	persister := newMemPersister()
	s := store.NewProjectStore(backend, persister)

	var notified []*model.Project
	s.OnSelect(func(_ context.Context, p *model.Project) {
		notified = append(notified, p)
	})

	project, err := s.Create(ctx, "new project", "desc")

	require.NoError(t, err)
	assert.Equal(t, int64(5), project.ID)
	assert.Len(t, s.Projects(), 1)
	require.NotNil(t, s.Current())
	assert.Equal(t, int64(5), s.Current().ID)
	assert.Equal(t, "5", persister.stored("current_project_id"))
	require.Len(t, notified, 1)
	assert.Equal(t, int64(5), notified[0].ID)
}

func TestProjectStore_Delete(t *testing.T) {
	ctx := context.Background()
	projects := []model.Project{
		{ID: 1, Name: "thesis"},
		{ID: 2, Name: "side quest"},
	}

	setup := func(t *testing.T) (*store.ProjectStore, *mocks.MockProjectAPI, *[]*model.Project) {
		backend := mocks.NewMockProjectAPI(t)
		backend.On("ListProjects", ctx).Return(projects, nil).Once()
		s := store.NewProjectStore(backend, newMemPersister())
		s.Fetch(ctx)

		var notified []*model.Project
		s.OnSelect(func(_ context.Context, p *model.Project) {
			notified = append(notified, p)
		})
		return s, backend, &notified
	}

	t.Run("deleting a non-current project keeps the selection", func(t *testing.T) {
		s, backend, notified := setup(t)
		backend.On("DeleteProject", ctx, int64(2)).Return(nil).Once()

		require.NoError(t, s.Delete(ctx, 2))

		assert.Len(t, s.Projects(), 1)
		require.NotNil(t, s.Current())
		assert.Equal(t, int64(1), s.Current().ID)
		assert.Empty(t, *notified)
	})

	t.Run("deleting the current project falls back to the first remaining", func(t *testing.T) {
		s, backend, notified := setup(t)
		backend.On("DeleteProject", ctx, int64(1)).Return(nil).Once()

		require.NoError(t, s.Delete(ctx, 1))

		require.NotNil(t, s.Current())
		assert.Equal(t, int64(2), s.Current().ID)
		require.Len(t, *notified, 1)
		assert.Equal(t, int64(2), (*notified)[0].ID)
	})

	t.Run("deleting the last project clears the selection", func(t *testing.T) {
		s, backend, notified := setup(t)
		backend.On("DeleteProject", ctx, int64(1)).Return(nil).Once()
		backend.On("DeleteProject", ctx, int64(2)).Return(nil).Once()

		require.NoError(t, s.Delete(ctx, 2))
		require.NoError(t, s.Delete(ctx, 1))

		_, ok := s.CurrentID()
		assert.False(t, ok)
		assert.Empty(t, s.Projects())
		require.Len(t, *notified, 1)
		assert.Nil(t, (*notified)[0])
	})

	t.Run("backend error leaves the list alone", func(t *testing.T) {
		s, backend, _ := setup(t)
		backend.On("DeleteProject", ctx, int64(1)).Return(errors.New("boom")).Once()

		err := s.Delete(ctx, 1)

		assert.Error(t, err)
		assert.Len(t, s.Projects(), 2)
	})
}

func TestProjectStore_Clear(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockProjectAPI(t)
	backend.On("ListProjects", ctx).Return([]model.Project{{ID: 1, Name: "thesis"}}, nil).Once()
	persister := newMemPersister()
	s := store.NewProjectStore(backend, persister)
	s.Fetch(ctx)
	require.NoError(t, s.Select(ctx, 1))

	s.Clear()

	_, ok := s.CurrentID()
	assert.False(t, ok)
	assert.Empty(t, s.Projects())
	// The persisted selection survives so the next login can restore it.
	assert.Equal(t, "1", persister.stored("current_project_id"))
}
