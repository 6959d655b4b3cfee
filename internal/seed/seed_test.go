package seed

import (
	"context"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
subjects:
  - subjectName: Algebra
    difficultyLevel: 2
    isActive: true
    contentModules:
      - id: m1
        title: Linear equations
        completed: true
        order: 1
      - id: m2
        title: Quadratics
        completed: false
        order: 2
studysessions:
  - sessionName: Chapter 3
    sessionDate: "2026-10-20"
    startTime: "09:00"
    subjectName: Algebra
logbookentries:
  - mistakeDescription: Sign error
    dateRecorded: "2026-10-17"
    relatedSubject: Algebra
    severityLevel: 3
`

func TestParseRejectsUnknownCollection(t *testing.T) {
	_, err := Parse([]byte("users:\n  - name: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users")
}

func TestApplySeedsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	collections := repository.NewMemoryCollections()
	svc := service.NewCollectionService(collections)

	fixtures, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)

	inserted, err := Apply(ctx, svc, fixtures)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		repository.SubjectsCollection:       1,
		repository.StudySessionsCollection:  1,
		repository.LogbookEntriesCollection: 1,
	}, inserted)

	subjects, err := collections.Subjects.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.NotEmpty(t, subjects[0].ID)
	assert.Equal(t, 2, subjects[0].TotalContentItems)
	assert.Equal(t, 1, subjects[0].CompletedContentItems)
	assert.Equal(t, 50, subjects[0].ProgressPercentage)

	sessions, err := collections.StudySessions.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].SessionDate)
	assert.Equal(t, "2026-10-20", sessions[0].SessionDate.In(model.Location()).Format("2006-01-02"))
}

func TestApplySkipsNonEmptyCollections(t *testing.T) {
	ctx := context.Background()
	collections := repository.NewMemoryCollections()
	svc := service.NewCollectionService(collections)
	require.NoError(t, collections.Subjects.Create(ctx, &model.Subject{SubjectName: "Existing"}))

	fixtures, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)

	inserted, err := Apply(ctx, svc, fixtures)
	require.NoError(t, err)
	assert.Zero(t, inserted[repository.SubjectsCollection])
	assert.Equal(t, 1, inserted[repository.LogbookEntriesCollection])

	subjects, err := collections.Subjects.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Existing", subjects[0].SubjectName)
}
