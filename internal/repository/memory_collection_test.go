package repository

import (
	"context"
	"testing"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCollectionCRUD(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection[model.Subject]()

	algebra := &model.Subject{SubjectName: "Algebra"}
	require.NoError(t, c.Create(ctx, algebra))
	require.NotEmpty(t, algebra.ID, "id is generated on create")
	assert.False(t, algebra.CreatedAt.IsZero())

	physics := &model.Subject{UUIDBase: model.UUIDBase{ID: "fixed-id"}, SubjectName: "Physics"}
	require.NoError(t, c.Create(ctx, physics))
	assert.Equal(t, "fixed-id", physics.ID)

	all, err := c.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Algebra", all[0].SubjectName, "insertion order is preserved")

	updated := model.Subject{UUIDBase: model.UUIDBase{ID: "fixed-id"}, SubjectName: "Physics II"}
	require.NoError(t, c.Update(ctx, &updated))
	assert.Equal(t, physics.CreatedAt, updated.CreatedAt, "creation time survives a full overwrite")

	all, _ = c.GetAll(ctx)
	assert.Equal(t, "Physics II", all[1].SubjectName)

	require.NoError(t, c.Delete(ctx, algebra.ID))
	require.NoError(t, c.Delete(ctx, "missing"), "deleting an unknown id is a no-op")

	all, _ = c.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "fixed-id", all[0].ID)
}

func TestMemoryCollectionUpdateUnknown(t *testing.T) {
	c := NewMemoryCollection[model.LogbookEntry]()
	err := c.Update(context.Background(), &model.LogbookEntry{UUIDBase: model.UUIDBase{ID: "nope"}})
	assert.ErrorIs(t, err, util.ErrRecordNotFound)
}

func TestMemoryCollectionRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection[model.StudySession]()
	require.NoError(t, c.Create(ctx, &model.StudySession{UUIDBase: model.UUIDBase{ID: "s1"}}))
	assert.Error(t, c.Create(ctx, &model.StudySession{UUIDBase: model.UUIDBase{ID: "s1"}}))
}

func TestGetAllReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection[model.StudySession]()
	require.NoError(t, c.Create(ctx, &model.StudySession{SessionName: "a"}))

	snapshot, _ := c.GetAll(ctx)
	snapshot[0].SessionName = "changed"

	again, _ := c.GetAll(ctx)
	assert.Equal(t, "a", again[0].SessionName)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"subjects", "studysessions", "logbookentries"}, Names())
}

func TestMemoryCollectionAppliesColumnDefaults(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection[model.LogbookEntry]()

	entry := &model.LogbookEntry{MistakeDescription: "sign error"}
	require.NoError(t, c.Create(ctx, entry))
	assert.Equal(t, 1, entry.SeverityLevel)

	all, err := c.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Minor", model.SeverityLabel(all[0].SeverityLevel))
}
