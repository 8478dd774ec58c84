package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTimeRecord_HasAttachments(t *testing.T) {
	bare := &TimeRecord{ID: "r1"}
	assert.False(t, bare.HasAttachments())

	withMood := &TimeRecord{ID: "r2", StateID: strPtr("good")}
	assert.True(t, withMood.HasAttachments())

	withNotes := &TimeRecord{ID: "r3", NoteIDs: []string{"n1"}}
	assert.True(t, withNotes.HasAttachments())
}

func TestTimeRecord_CloneIsDeep(t *testing.T) {
	orig := &TimeRecord{
		ID:         "r1",
		CategoryID: strPtr("work"),
		StateID:    strPtr("good"),
		NoteIDs:    []string{"n1", "n2"},
	}

	cp := orig.Clone()
	require.Equal(t, orig.ID, cp.ID)

	*cp.CategoryID = "rest"
	cp.NoteIDs[0] = "other"

	assert.Equal(t, "work", *orig.CategoryID)
	assert.Equal(t, "n1", orig.NoteIDs[0])
}

func TestBucketFromRecord_RoundTrip(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rec := &TimeRecord{
		ID:      "r1",
		Start:   start,
		End:     start.Add(30 * time.Minute),
		OwnerID: "owner",
		NoteIDs: []string{"n1"},
	}

	b := BucketFromRecord(rec)
	require.NotNil(t, b.Identity)
	assert.Equal(t, "r1", *b.Identity)
	assert.False(t, b.Empty())
	assert.True(t, b.Contains(start.Add(5*time.Minute)))
	assert.False(t, b.Contains(start.Add(30*time.Minute)))

	back := b.Record()
	assert.Equal(t, rec.ID, back.ID)
	assert.Equal(t, rec.Start, back.Start)
	assert.Equal(t, rec.NoteIDs, back.NoteIDs)
}

func TestTimeBucket_EmptyRecordHasBlankID(t *testing.T) {
	b := TimeBucket{Start: time.Now(), OwnerID: "owner"}
	assert.True(t, b.Empty())
	assert.Equal(t, "", b.Record().ID)
}
