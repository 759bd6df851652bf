package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shed/internal/domain"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	store, err := Open(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestOpen_CreatesSchemaVersionOne(t *testing.T) {
	store, _ := openTestStore(t)

	var versions []SchemaVersionModel
	require.NoError(t, store.db.Find(&versions).Error)
	require.Len(t, versions, 1)
	assert.Equal(t, 1, versions[0].Version)

	migrator := store.db.Migrator()
	for _, table := range []string{"recordings", "notes", "progress", "id_sequences"} {
		assert.True(t, migrator.HasTable(table), table)
	}
}

func TestOpen_ReopenKeepsRows(t *testing.T) {
	ctx := context.Background()
	store, dbPath := openTestStore(t)

	_, err := store.Progress().Put(ctx, domain.NewProgressRecord("autumn-leaves"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Progress().Get(ctx, "autumn-leaves")
	require.NoError(t, err)
	require.NotNil(t, got)

	var versions []SchemaVersionModel
	require.NoError(t, reopened.db.Find(&versions).Error)
	assert.Len(t, versions, 1)
}

func TestOpen_RefusesNewerSchema(t *testing.T) {
	ctx := context.Background()
	store, dbPath := openTestStore(t)

	require.NoError(t, store.db.Create(&SchemaVersionModel{Version: 99, AppliedAt: time.Now()}).Error)
	require.NoError(t, store.Close())

	_, err := Open(ctx, dbPath)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestOpen_UnwritableLocation(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := Open(context.Background(), filepath.Join(blocker, "state.db"))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestProgress_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	practiced := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	notes := "watch the turnaround"
	rec := domain.NewProgressRecord("autumn-leaves").Apply(domain.ProgressPatch{
		Checklist:     map[string]bool{"melody": true, "chords": true, "memorized": true},
		LastPracticed: &practiced,
		Notes:         &notes,
	})
	rec.Recordings, _ = rec.Recordings.WithAdded(domain.Recording{
		Artist:     "Cannonball Adderley",
		CreatedAt:  practiced,
		StandardID: "autumn-leaves",
		Type:       domain.RecordingReference,
		URL:        "https://example.com/somethin-else",
	})

	_, err := store.Progress().Put(ctx, rec)
	require.NoError(t, err)

	got, err := store.Progress().Get(ctx, "autumn-leaves")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
	assert.Equal(t, 43, got.CompletionPercentage)
}

func TestProgress_PutGetRoundTripFromLocalZone(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	practiced := time.Date(2024, 3, 1, 20, 0, 0, 0, time.FixedZone("EST", -5*3600))
	rec := domain.NewProgressRecord("all-blues").Apply(domain.ProgressPatch{LastPracticed: &practiced})

	saved, err := store.Progress().Put(ctx, rec)
	require.NoError(t, err)

	got, err := store.Progress().Get(ctx, "all-blues")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, saved)
	assert.Equal(t, rec, *got)
}

func TestProgress_PutReplaces(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	first := domain.NewProgressRecord("blue-bossa").Apply(domain.ProgressPatch{Checklist: map[string]bool{"melody": true}})
	_, err := store.Progress().Put(ctx, first)
	require.NoError(t, err)

	second := first.Apply(domain.ProgressPatch{Checklist: map[string]bool{}})
	_, err = store.Progress().Put(ctx, second)
	require.NoError(t, err)

	all, err := store.Progress().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 0, all[0].CompletionPercentage)
}

func TestProgress_AddRejectsExistingKey(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	_, err := store.Progress().Add(ctx, domain.NewProgressRecord("all-blues"))
	require.NoError(t, err)

	_, err = store.Progress().Add(ctx, domain.NewProgressRecord("all-blues"))
	assert.Error(t, err)
}

func TestGet_AbsentKeyReturnsNil(t *testing.T) {
	store, _ := openTestStore(t)

	got, err := store.Progress().Get(context.Background(), "body-and-soul")
	assert.NoError(t, err)
	assert.Nil(t, got)

	rec, err := store.Recordings().Get(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRecordings_GetByIndexReturnsBoth(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	for _, artist := range []string{"Miles Davis", "Bill Evans"} {
		_, err := store.Recordings().Add(ctx, domain.Recording{
			Artist:     artist,
			StandardID: "autumn-leaves",
			Type:       domain.RecordingReference,
			URL:        "https://example.com/" + artist,
		})
		require.NoError(t, err)
	}
	_, err := store.Recordings().Add(ctx, domain.Recording{
		Filename:   "take1.m4a",
		FileRef:    "take1.m4a",
		StandardID: "blue-bossa",
		Type:       domain.RecordingPersonal,
	})
	require.NoError(t, err)

	got, err := store.Recordings().GetByIndex(ctx, "standardId", "autumn-leaves")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)

	byType, err := store.Recordings().GetByIndex(ctx, "type", "personal")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "blue-bossa", byType[0].StandardID)
}

func TestRecordings_IDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	rec := domain.Recording{Artist: "Chet Baker", StandardID: "alone-together", Type: domain.RecordingReference, URL: "u"}
	first, err := store.Recordings().Add(ctx, rec)
	require.NoError(t, err)
	require.NoError(t, store.Recordings().Delete(ctx, first.ID))

	second, err := store.Recordings().Add(ctx, rec)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestRecordings_PutWithExplicitIDAdvancesCounter(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	rec := domain.Recording{Artist: "Chet Baker", StandardID: "alone-together", Type: domain.RecordingReference, URL: "u"}
	rec.ID = 10
	_, err := store.Recordings().Put(ctx, rec)
	require.NoError(t, err)

	added, err := store.Recordings().Add(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, int64(11), added.ID)
}

func TestGetByIndex_UnknownIndex(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Notes().GetByIndex(context.Background(), "content", "x")
	assert.ErrorIs(t, err, domain.ErrUnknownIndex)

	_, err = store.Progress().GetByIndex(context.Background(), "type", "reference")
	assert.ErrorIs(t, err, domain.ErrUnknownIndex)
}

func TestNotes_AddAndDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	date := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	note, err := store.Notes().Add(ctx, domain.Note{Content: "slow practice", Date: date, StandardID: "all-blues"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), note.ID)

	byDate, err := store.Notes().GetByIndex(ctx, "standardId", "all-blues")
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.True(t, date.Equal(byDate[0].Date))

	require.NoError(t, store.Notes().Delete(ctx, note.ID))
	require.NoError(t, store.Notes().Delete(ctx, note.ID))

	all, err := store.Notes().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNotes_GetByDateIndex(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	morning, err := store.Notes().Add(ctx, domain.Note{
		Content: "shell voicings", Date: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), StandardID: "all-blues",
	})
	require.NoError(t, err)
	// 23:30 in New York is already March 5 in UTC
	_, err = store.Notes().Add(ctx, domain.Note{
		Content: "late run-through", Date: time.Date(2024, 3, 4, 23, 30, 0, 0, time.FixedZone("EST", -5*3600)), StandardID: "all-blues",
	})
	require.NoError(t, err)
	_, err = store.Notes().Add(ctx, domain.Note{
		Content: "day before", Date: time.Date(2024, 3, 3, 23, 59, 59, 0, time.UTC), StandardID: "blue-bossa",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "date key selects the UTC day", value: "2024-03-04", want: []string{"shell voicings"}},
		{name: "RFC3339 selects the instant", value: "2024-03-04T10:00:00Z", want: []string{"shell voicings"}},
		{name: "RFC3339 with offset", value: "2024-03-04T11:00:00+01:00", want: []string{"shell voicings"}},
		{name: "next UTC day", value: "2024-03-05", want: []string{"late run-through"}},
		{name: "empty day", value: "2024-03-06", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := store.Notes().GetByIndex(ctx, "date", tt.value)
			require.NoError(t, err)

			var contents []string
			for _, n := range notes {
				contents = append(contents, n.Content)
			}
			assert.Equal(t, tt.want, contents)
		})
	}

	byDay, err := store.Notes().GetByIndex(ctx, "date", "2024-03-04")
	require.NoError(t, err)
	require.Len(t, byDay, 1)
	assert.Equal(t, morning, byDay[0])
}

func TestNotes_GetByDateIndexRejectsMalformedValue(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Notes().GetByIndex(context.Background(), "date", "March 4th")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecordings_GetByTypeIndex(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	_, err := store.Recordings().Add(ctx, domain.Recording{Artist: "Bill Evans", StandardID: "autumn-leaves", Type: domain.RecordingReference})
	require.NoError(t, err)
	take, err := store.Recordings().Add(ctx, domain.Recording{FileRef: "take1.m4a", StandardID: "autumn-leaves", Type: domain.RecordingPersonal})
	require.NoError(t, err)
	_, err = store.Recordings().Add(ctx, domain.Recording{FileRef: "take2.m4a", StandardID: "blue-bossa", Type: domain.RecordingPersonal})
	require.NoError(t, err)

	personal, err := store.Recordings().GetByIndex(ctx, "type", "personal")
	require.NoError(t, err)
	require.Len(t, personal, 2)
	assert.Equal(t, take.ID, personal[0].ID)
	assert.Equal(t, "blue-bossa", personal[1].StandardID)

	reference, err := store.Recordings().GetByIndex(ctx, "type", "reference")
	require.NoError(t, err)
	require.Len(t, reference, 1)
	assert.Equal(t, "Bill Evans", reference[0].Artist)
}

func TestUnavailable_FailsEveryOperation(t *testing.T) {
	ctx := context.Background()
	store := Unavailable(assert.AnError)

	_, err := store.Progress().GetAll(ctx)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = store.Recordings().Add(ctx, domain.Recording{})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	assert.ErrorIs(t, store.Notes().Delete(ctx, 1), domain.ErrStorageUnavailable)
}
