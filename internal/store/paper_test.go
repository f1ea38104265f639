package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"research-agent/client/internal/api"
	apperrors "research-agent/client/internal/errors"
	"research-agent/client/internal/interfaces/mocks"
	"research-agent/client/internal/model"
	"research-agent/client/internal/store"
)

type paperFixture struct {
	store    *store.PaperStore
	backend  *mocks.MockPaperAPI
	projects *store.ProjectStore
}

func setupPaperStore(t *testing.T, projects []model.Project) paperFixture {
	ctx := context.Background()
	projectAPI := mocks.NewMockProjectAPI(t)
	projectAPI.On("ListProjects", ctx).Return(projects, nil).Once()
	projectStore := store.NewProjectStore(projectAPI, newMemPersister())
	projectStore.Fetch(ctx)

	backend := mocks.NewMockPaperAPI(t)
	return paperFixture{
		store:    store.NewPaperStore(backend, projectStore),
		backend:  backend,
		projects: projectStore,
	}
}

func TestPaperStore_Add(t *testing.T) {
	ctx := context.Background()
	draft := &api.PaperDraft{Title: "Attention Is All You Need", Year: 2017}

	t.Run("fails locally without a project", func(t *testing.T) {
		fx := setupPaperStore(t, nil)

		_, err := fx.store.Add(ctx, draft)

		assert.ErrorIs(t, err, apperrors.ErrNoProject)
		fx.backend.AssertNotCalled(t, "CreatePaper", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns immediately and fills the citation in the background", func(t *testing.T) {
		fx := setupPaperStore(t, []model.Project{{ID: 1, Name: "thesis"}})
		fx.backend.On("CreatePaper", ctx, int64(1), draft).
			Return(&model.Paper{ID: 42, Title: draft.Title, Year: 2017}, nil).Once()
		// Generation runs on a detached context, not the caller's.
		fx.backend.On("GenerateBibtex", mock.Anything, int64(42)).
			Return("@article{vaswani2017attention}", nil).Once()

		paper, err := fx.store.Add(ctx, draft)

		require.NoError(t, err)
		assert.True(t, paper.BibtexLoading)
		assert.Empty(t, paper.Bibtex)

		fx.store.WaitBackground()

		papers := fx.store.Papers()
		require.Len(t, papers, 1)
		assert.Equal(t, int64(42), papers[0].ID)
		assert.Equal(t, "@article{vaswani2017attention}", papers[0].Bibtex)
		assert.False(t, papers[0].BibtexLoading)
	})

	t.Run("generation failure only clears the loading flag", func(t *testing.T) {
		fx := setupPaperStore(t, []model.Project{{ID: 1, Name: "thesis"}})
		fx.backend.On("CreatePaper", ctx, int64(1), draft).
			Return(&model.Paper{ID: 43, Title: draft.Title}, nil).Once()
		fx.backend.On("GenerateBibtex", mock.Anything, int64(43)).
			Return("", errors.New("generation timed out")).Once()

		_, err := fx.store.Add(ctx, draft)
		require.NoError(t, err)

		fx.store.WaitBackground()

		papers := fx.store.Papers()
		require.Len(t, papers, 1)
		assert.False(t, papers[0].BibtexLoading)
		assert.Empty(t, papers[0].Bibtex)
	})
}

func TestPaperStore_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("no-op without a project", func(t *testing.T) {
		fx := setupPaperStore(t, nil)
		fx.store.Fetch(ctx)
		assert.Empty(t, fx.store.Papers())
	})

	t.Run("keeps the previous list on error", func(t *testing.T) {
		fx := setupPaperStore(t, []model.Project{{ID: 1, Name: "thesis"}})
		fx.backend.On("ListPapers", ctx, int64(1)).
			Return([]model.Paper{{ID: 3, Title: "BERT"}}, nil).Once()
		fx.backend.On("ListPapers", ctx, int64(1)).
			Return(nil, errors.New("boom")).Once()

		fx.store.Fetch(ctx)
		fx.store.Fetch(ctx)

		assert.Len(t, fx.store.Papers(), 1)
		assert.False(t, fx.store.IsLoading())
	})
}

func TestPaperStore_ToggleContext(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the inverted flag", func(t *testing.T) {
		fx := setupPaperStore(t, []model.Project{{ID: 1, Name: "thesis"}})
		fx.backend.On("ListPapers", ctx, int64(1)).
			Return([]model.Paper{{ID: 3, Title: "BERT", InContext: true}}, nil).Once()
		fx.store.Fetch(ctx)

		fx.backend.On("UpdatePaper", ctx, int64(3), map[string]any{"inContext": false}).
			Return(&model.Paper{ID: 3, Title: "BERT", InContext: false}, nil).Once()

		require.NoError(t, fx.store.ToggleContext(ctx, 3))

		papers := fx.store.Papers()
		require.Len(t, papers, 1)
		assert.False(t, papers[0].InContext)
	})

	t.Run("unknown paper", func(t *testing.T) {
		fx := setupPaperStore(t, []model.Project{{ID: 1, Name: "thesis"}})

		err := fx.store.ToggleContext(ctx, 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		fx.backend.AssertNotCalled(t, "UpdatePaper", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaperStore_Copy(t *testing.T) {
	ctx := context.Background()

	t.Run("copy into the current project joins the list", func(t *testing.T) {
		fx := setupPaperStore(t, []model.Project{{ID: 1, Name: "thesis"}})
		fx.backend.On("CopyPaper", ctx, int64(3), int64(1)).
			Return(&model.Paper{ID: 9, Title: "BERT"}, nil).Once()

		paper, err := fx.store.Copy(ctx, 3, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(9), paper.ID)
		require.Len(t, fx.store.Papers(), 1)
		assert.Equal(t, int64(9), fx.store.Papers()[0].ID)
	})

	t.Run("copy into another project stays off the list", func(t *testing.T) {
		fx := setupPaperStore(t, []model.Project{{ID: 1, Name: "thesis"}})
		fx.backend.On("CopyPaper", ctx, int64(3), int64(2)).
			Return(&model.Paper{ID: 9, Title: "BERT"}, nil).Once()

		_, err := fx.store.Copy(ctx, 3, 2)

		require.NoError(t, err)
		assert.Empty(t, fx.store.Papers())
	})
}

func TestPaperStore_Delete(t *testing.T) {
	ctx := context.Background()
	fx := setupPaperStore(t, []model.Project{{ID: 1, Name: "thesis"}})
	fx.backend.On("ListPapers", ctx, int64(1)).
		Return([]model.Paper{{ID: 3, Title: "BERT"}, {ID: 4, Title: "GPT"}}, nil).Once()
	fx.store.Fetch(ctx)
	fx.backend.On("DeletePaper", ctx, int64(3)).Return(nil).Once()

	require.NoError(t, fx.store.Delete(ctx, 3))

	papers := fx.store.Papers()
	require.Len(t, papers, 1)
	assert.Equal(t, int64(4), papers[0].ID)
}

func TestPaperStore_Update(t *testing.T) {
	ctx := context.Background()
	fx := setupPaperStore(t, []model.Project{{ID: 1, Name: "thesis"}})
	fx.backend.On("ListPapers", ctx, int64(1)).
		Return([]model.Paper{{ID: 3, Title: "BERT"}}, nil).Once()
	fx.store.Fetch(ctx)

	fx.backend.On("UpdatePaper", ctx, int64(3), map[string]any{"year": 2019}).
		Return(&model.Paper{ID: 3, Title: "BERT", Year: 2019}, nil).Once()

	paper, err := fx.store.Update(ctx, 3, map[string]any{"year": 2019})

	require.NoError(t, err)
	assert.Equal(t, 2019, paper.Year)
	assert.Equal(t, 2019, fx.store.Papers()[0].Year)
}
