package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/mmi-portfolio/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectDoc(slug string) Document {
	return Document{
		"_id":               "65f0c0ffee",
		"title":             "Title " + slug,
		"slug":              slug,
		"category":          "UI/UX",
		"tags":              []any{"Fintech"},
		"short_description": "Teaser",
		"description":       "Case study",
		"images":            []any{"https://images.example.com/" + slug + ".jpg"},
		"highlight":         true,
	}
}

func TestProjectRepository_List(t *testing.T) {
	var gotCollection string
	var gotLimit int64
	store := &fakeStore{
		findFunc: func(ctx context.Context, collection string, limit int64) ([]Document, error) {
			gotCollection, gotLimit = collection, limit
			return []Document{projectDoc("one"), projectDoc("two")}, nil
		},
	}

	projects, err := NewProjectRepository(store).List(context.Background(), 50)
	require.NoError(t, err)

	assert.Equal(t, ProjectCollection, gotCollection)
	assert.Equal(t, int64(50), gotLimit)
	require.Len(t, projects, 2)
	assert.Equal(t, "one", projects[0].Slug)
	assert.Equal(t, []string{"Fintech"}, projects[0].Tags)
	assert.Equal(t, []string{}, projects[0].Tools)
	assert.True(t, projects[0].Highlight)
}

func TestProjectRepository_List_NoStore(t *testing.T) {
	_, err := NewProjectRepository(nil).List(context.Background(), 50)
	assert.ErrorIs(t, err, ErrNoStore)
}

func TestProjectRepository_List_StoreError(t *testing.T) {
	storeErr := errors.New("server selection timeout")
	store := &fakeStore{
		findFunc: func(ctx context.Context, collection string, limit int64) ([]Document, error) {
			return nil, storeErr
		},
	}

	_, err := NewProjectRepository(store).List(context.Background(), 50)
	assert.ErrorIs(t, err, storeErr)
}

func TestProjectRepository_List_InvalidDocument(t *testing.T) {
	bad := projectDoc("bad")
	delete(bad, "title")
	store := &fakeStore{
		findFunc: func(ctx context.Context, collection string, limit int64) ([]Document, error) {
			return []Document{projectDoc("good"), bad}, nil
		},
	}

	_, err := NewProjectRepository(store).List(context.Background(), 50)
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
}

func TestProjectRepository_List_WrongFieldType(t *testing.T) {
	bad := projectDoc("bad")
	bad["highlight"] = "yes"
	store := &fakeStore{
		findFunc: func(ctx context.Context, collection string, limit int64) ([]Document, error) {
			return []Document{bad}, nil
		},
	}

	_, err := NewProjectRepository(store).List(context.Background(), 50)
	assert.Error(t, err)
}
