package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"study_tracker_backend/internal/config"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subjectNames(items []SubjectItem) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.SubjectName)
	}
	return out
}

func newSubjectService(env *testEnv, storageDir string) *SubjectService {
	cfg := &config.Config{Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: storageDir}}
	return NewSubjectService(env.collections, env.pins, NewStorageService(cfg))
}

func TestSubjectTabsWithPinnedFirst(t *testing.T) {
	subjects := []model.Subject{
		{UUIDBase: model.UUIDBase{ID: "a"}, SubjectName: "A", IsActive: true, DifficultyLevel: 1},
		{UUIDBase: model.UUIDBase{ID: "b"}, SubjectName: "B", IsActive: false, DifficultyLevel: 3},
		{UUIDBase: model.UUIDBase{ID: "c"}, SubjectName: "C", IsActive: true, DifficultyLevel: 5},
		{UUIDBase: model.UUIDBase{ID: "d"}, SubjectName: "D", IsActive: true},
		{UUIDBase: model.UUIDBase{ID: "e"}, SubjectName: "E", IsActive: false, DifficultyLevel: 4},
	}
	pinned := map[string]bool{"e": true, "c": true}

	names := func(in []model.Subject) []string {
		out := []string{}
		for _, s := range in {
			out = append(out, s.SubjectName)
		}
		return out
	}

	assert.Equal(t, []string{"C", "E", "A", "B", "D"}, names(FilterSubjects(subjects, TabAll, pinned)))
	assert.Equal(t, []string{"C", "E"}, names(FilterSubjects(subjects, TabPinned, pinned)))
	assert.Equal(t, []string{"C", "A", "D"}, names(FilterSubjects(subjects, TabActive, pinned)))
	assert.Equal(t, []string{"E", "B"}, names(FilterSubjects(subjects, TabInactive, pinned)))
	assert.Equal(t, []string{"A", "D"}, names(FilterSubjects(subjects, TabBeginner, pinned)), "missing difficulty counts as 1")
	assert.Equal(t, []string{"B"}, names(FilterSubjects(subjects, TabIntermediate, pinned)))
	assert.Equal(t, []string{"C", "E"}, names(FilterSubjects(subjects, TabAdvanced, pinned)))
	assert.Equal(t, []string{"C", "E", "A", "B", "D"}, names(FilterSubjects(subjects, "unknown", pinned)))
}

func TestDeletingPinnedSubjectUnpinsIt(t *testing.T) {
	env := newTestEnv()
	svc := newSubjectService(env, t.TempDir())
	ctx := context.Background()

	env.addSubject(t, model.Subject{SubjectName: "A"})
	b := env.addSubject(t, model.Subject{SubjectName: "B"})
	c := env.addSubject(t, model.Subject{SubjectName: "C"})

	_, err := svc.TogglePin(ctx, "p1", b.ID, TabAll)
	require.NoError(t, err)
	view, err := svc.TogglePin(ctx, "p1", c.ID, TabAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, subjectNames(view.Subjects))
	assert.True(t, view.Subjects[0].Pinned)
	assert.False(t, view.Subjects[2].Pinned)

	_, err = svc.Delete(ctx, "p1", b.ID, false, TabPinned)
	assert.ErrorIs(t, err, util.ErrConfirmationRequired)
	assert.Len(t, svc.View(ctx, "p1", TabPinned).Subjects, 2)

	view, err = svc.Delete(ctx, "p1", b.ID, true, TabPinned)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, subjectNames(view.Subjects))
	assert.Equal(t, []string{c.ID}, view.Pinned)

	// 重新读取偏好存储
	reloaded := NewPinService(env.store)
	assert.Equal(t, []string{c.ID}, reloaded.Pinned(ctx, "p1"))
	assert.Equal(t, []string{"C", "A"}, subjectNames(svc.View(ctx, "p1", TabAll).Subjects))
}

func TestSubjectCreateAndUpdatePreserveModules(t *testing.T) {
	env := newTestEnv()
	svc := newSubjectService(env, t.TempDir())
	ctx := context.Background()

	saved, view, err := svc.Save(ctx, "p1", "", SubjectForm{SubjectCode: "MATH101"}, TabAll)
	require.NoError(t, err)
	assert.False(t, saved, "subject name is required")
	assert.Empty(t, view.Subjects)

	saved, view, err = svc.Save(ctx, "p1", "", SubjectForm{SubjectName: "Algebra", DifficultyLevel: 3}, TabAll)
	require.NoError(t, err)
	assert.True(t, saved)
	require.Len(t, view.Subjects, 1)
	created := view.Subjects[0]
	assert.True(t, created.IsActive, "subjects start active")
	assert.JSONEq(t, `[]`, string(created.ContentModules))
	assert.Equal(t, 0, created.ProgressPercentage)
	assert.Equal(t, "Medium", created.DifficultyLabel)

	_, err = svc.CommitModules(ctx, "p1", created.ID, []ModuleOp{
		{Op: ModuleOpAdd, Title: "Linear equations"},
		{Op: ModuleOpAdd, Title: "Quadratics"},
	}, TabAll)
	require.NoError(t, err)

	inactive := false
	_, view, err = svc.Save(ctx, "p1", created.ID, SubjectForm{SubjectName: "Algebra I", IsActive: &inactive, DifficultyLevel: 2}, TabAll)
	require.NoError(t, err)
	updated := view.Subjects[0]
	assert.Equal(t, "Algebra I", updated.SubjectName)
	assert.False(t, updated.IsActive)
	assert.Equal(t, 2, updated.TotalContentItems, "editing the form keeps modules")
	assert.Len(t, updated.Modules, 2)
}

func TestCommitModulesRecomputesProgress(t *testing.T) {
	env := newTestEnv()
	svc := newSubjectService(env, t.TempDir())
	ctx := context.Background()
	subject := env.addSubject(t, model.Subject{SubjectName: "Physics"})

	ops := []ModuleOp{
		{Op: ModuleOpAdd, Title: "Kinematics", Description: "1D motion"},
		{Op: ModuleOpAdd, Title: "Forces"},
		{Op: ModuleOpAdd, Title: "Energy"},
		{Op: ModuleOpAdd, Title: "Momentum"},
		{Op: ModuleOpAdd, Title: "   "},
	}
	_, err := svc.CommitModules(ctx, "", subject.ID, ops, TabAll)
	require.NoError(t, err)

	editor, err := svc.Modules(ctx, subject.ID)
	require.NoError(t, err)
	require.Len(t, editor.Modules, 4, "blank titles are ignored")
	for i, m := range editor.Modules {
		assert.Equal(t, i+1, m.Order)
		assert.False(t, m.Completed)
	}

	var toggles []ModuleOp
	for _, m := range editor.Modules[:3] {
		toggles = append(toggles, ModuleOp{Op: ModuleOpToggle, ModuleID: m.ID})
	}
	view, err := svc.CommitModules(ctx, "", subject.ID, toggles, TabAll)
	require.NoError(t, err)
	got := view.Subjects[0]
	assert.Equal(t, 4, got.TotalContentItems)
	assert.Equal(t, 3, got.CompletedContentItems)
	assert.Equal(t, 75, got.ProgressPercentage)
	assert.False(t, got.CompletionStatus)

	view, err = svc.CommitModules(ctx, "", subject.ID, []ModuleOp{{Op: ModuleOpDelete, ModuleID: editor.Modules[3].ID}}, TabAll)
	require.NoError(t, err)
	got = view.Subjects[0]
	assert.Equal(t, 100, got.ProgressPercentage)
	assert.True(t, got.CompletionStatus)

	_, err = svc.CommitModules(ctx, "", subject.ID, []ModuleOp{{Op: ModuleOpAdd, Title: "x"}, {Op: "rename"}}, TabAll)
	assert.ErrorIs(t, err, util.ErrInvalidModuleOp)
	editor, err = svc.Modules(ctx, subject.ID)
	require.NoError(t, err)
	assert.Len(t, editor.Modules, 3, "a rejected batch writes nothing")
}

func TestModuleEditorDiscardsUntilCommitted(t *testing.T) {
	stored := []model.ContentModule{{ID: "m1", Title: "A", Order: 1}}
	editor := NewModuleEditor(stored)
	editor.Toggle("m1")
	editor.Add("B", "")
	editor.Delete("missing")

	assert.False(t, stored[0].Completed, "the seed list is not mutated")
	assert.Len(t, editor.Modules(), 2)
	assert.Equal(t, 50, editor.Progress().Percentage)
}

func TestSubjectStatsMatchByName(t *testing.T) {
	env := newTestEnv()
	svc := newSubjectService(env, t.TempDir())
	algebra := env.addSubject(t, model.Subject{SubjectName: "Algebra"})
	env.addSession(t, model.StudySession{SubjectName: "Algebra"})
	env.addSession(t, model.StudySession{SubjectName: "algebra"})
	env.addEntry(t, model.LogbookEntry{RelatedSubject: "Algebra", IsResolved: true})
	env.addEntry(t, model.LogbookEntry{RelatedSubject: "Algebra"})
	env.addEntry(t, model.LogbookEntry{RelatedSubject: "Algebra"})

	st, err := svc.Stats(context.Background(), algebra.ID)
	require.NoError(t, err)
	assert.Equal(t, SubjectStats{TotalSessions: 1, TotalMistakes: 3, ResolvedMistakes: 1, ResolutionRate: 33}, *st)

	_, err = svc.Stats(context.Background(), "missing")
	assert.ErrorIs(t, err, util.ErrRecordNotFound)

	view := svc.View(context.Background(), "", TabAll)
	assert.Equal(t, SubjectsQuickStats{TotalSubjects: 1, ActiveSubjects: 0, StudySessions: 2}, view.Stats)
}

func TestUploadSubjectImage(t *testing.T) {
	env := newTestEnv()
	dir := t.TempDir()
	svc := newSubjectService(env, dir)
	subject := env.addSubject(t, model.Subject{SubjectName: "Algebra"})

	updated, err := svc.UploadImage(context.Background(), subject.ID, "cover.PNG", bytes.NewReader([]byte("png")), 3, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.SubjectImage, "/uploads/subjects/"+subject.ID+"/"))
	assert.True(t, strings.HasSuffix(updated.SubjectImage, ".png"))

	onDisk := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(updated.SubjectImage, "/uploads/")))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png", string(content))

	_, err = svc.UploadImage(context.Background(), subject.ID, "notes.txt", bytes.NewReader([]byte("x")), 1, "text/plain")
	assert.ErrorIs(t, err, util.ErrInvalidFileType)
}

func TestUploadSubjectImageStaysUnderStorageRoot(t *testing.T) {
	env := newTestEnv()
	root := t.TempDir()
	dir := filepath.Join(root, "uploads")
	svc := newSubjectService(env, dir)
	subject := env.addSubject(t, model.Subject{UUIDBase: model.UUIDBase{ID: "../../escaped"}, SubjectName: "Algebra"})

	_, err := svc.UploadImage(context.Background(), subject.ID, "cover.png", bytes.NewReader([]byte("png")), 3, "image/png")
	assert.ErrorIs(t, err, util.ErrInvalidPayload)

	_, statErr := os.Stat(filepath.Join(root, "escaped"))
	assert.True(t, os.IsNotExist(statErr), "nothing is written outside the storage root")

	local := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}
	assert.ErrorIs(t, local.Delete(context.Background(), "../outside.png"), util.ErrInvalidPayload)
}

func TestReplacingSubjectImageRemovesOldObject(t *testing.T) {
	env := newTestEnv()
	dir := t.TempDir()
	svc := newSubjectService(env, dir)
	ctx := context.Background()
	subject := env.addSubject(t, model.Subject{SubjectName: "Algebra"})

	onDisk := func(url string) string {
		return filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(url, "/uploads/")))
	}

	first, err := svc.UploadImage(ctx, subject.ID, "a.png", bytes.NewReader([]byte("one")), 3, "image/png")
	require.NoError(t, err)
	firstPath := onDisk(first.SubjectImage)
	require.FileExists(t, firstPath)

	second, err := svc.UploadImage(ctx, subject.ID, "b.png", bytes.NewReader([]byte("two")), 3, "image/png")
	require.NoError(t, err)
	assert.NoFileExists(t, firstPath)
	secondPath := onDisk(second.SubjectImage)
	assert.FileExists(t, secondPath)

	_, err = svc.Delete(ctx, "", subject.ID, true, TabAll)
	require.NoError(t, err)
	assert.NoFileExists(t, secondPath)
}

func TestExternalSubjectImageIsLeftAlone(t *testing.T) {
	env := newTestEnv()
	svc := newSubjectService(env, t.TempDir())

	name, ok := svc.Storage.SubjectImageObjectName("/uploads/subjects/s1/x.png")
	assert.True(t, ok)
	assert.Equal(t, "subjects/s1/x.png", name)

	_, ok = svc.Storage.SubjectImageObjectName("https://example.com/cover.png")
	assert.False(t, ok)
	_, ok = svc.Storage.SubjectImageObjectName("")
	assert.False(t, ok)

	subject := env.addSubject(t, model.Subject{SubjectName: "Algebra", SubjectImage: "https://example.com/cover.png"})
	_, err := svc.Delete(context.Background(), "", subject.ID, true, TabAll)
	require.NoError(t, err)
}
