package timeline

import (
	"errors"
	"testing"
	"time"

	"github.com/gridlog/gridlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingToasts struct {
	successes []string
	warnings  []string
	errors    []string
}

func (r *recordingToasts) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recordingToasts) Warning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recordingToasts) Error(msg string)   { r.errors = append(r.errors, msg) }

func newTestAssigner() (*Assigner, *DialogSet, *recordingToasts) {
	dialogs := NewDialogSet(DialogLegend, DialogMood, DialogNotes)
	toasts := &recordingToasts{}
	return NewAssigner(dialogs, toasts, nil), dialogs, toasts
}

func emptyBucketAt(hour, minute int) domain.TimeBucket {
	start := dayUTC(hour, minute)
	return domain.TimeBucket{Start: start, End: start.Add(30 * time.Minute), OwnerID: "owner"}
}

func filledBucket(id string, hour, minute int) domain.TimeBucket {
	rec := record(id, dayUTC(hour, minute))
	return domain.BucketFromRecord(rec)
}

func TestTap_NoSelectionDefersAndOpensLegend(t *testing.T) {
	a, dialogs, toasts := newTestAssigner()
	dialogs.Open(DialogMood) // another surface is open before the tap

	out := a.Tap(emptyBucketAt(9, 0))

	assert.True(t, out.Deferred)
	assert.Nil(t, out.Create)
	assert.Nil(t, out.Update)
	assert.Equal(t, 1, a.PendingCreations())
	assert.Equal(t, ModePicking, a.Mode())

	legend := dialogs.State(DialogLegend)
	assert.False(t, legend.Collapsed)
	assert.True(t, legend.PickingMode)
	assert.True(t, dialogs.State(DialogMood).Collapsed, "other dialogs are forced closed")
	require.Len(t, toasts.warnings, 1)
}

func TestTap_IdempotentEnqueueBySameStart(t *testing.T) {
	a, _, _ := newTestAssigner()

	a.Tap(emptyBucketAt(9, 0))
	a.Tap(emptyBucketAt(9, 0))

	assert.Equal(t, 1, a.PendingCreations(), "duplicate start enqueues once")

	a.Tap(emptyBucketAt(9, 30))
	assert.Equal(t, 2, a.PendingCreations())
}

func TestTap_ExistingRecordQueuesUpdateByID(t *testing.T) {
	a, _, _ := newTestAssigner()

	a.Tap(filledBucket("r1", 9, 0))
	a.Tap(filledBucket("r1", 9, 0))
	a.Tap(filledBucket("r2", 10, 0))

	assert.Equal(t, 0, a.PendingCreations())
	assert.Equal(t, 2, a.PendingUpdates())
}

func TestTap_WithSelectionCommitsDirectly(t *testing.T) {
	a, _, _ := newTestAssigner()
	a.Select(domain.StrPtr("exercise"))

	out := a.Tap(emptyBucketAt(9, 0))
	require.NotNil(t, out.Create)
	assert.False(t, out.Deferred)
	require.NotNil(t, out.Create.CategoryID)
	assert.Equal(t, "exercise", *out.Create.CategoryID)
	assert.Equal(t, dayUTC(9, 0), out.Create.Start)
	assert.Equal(t, "", out.Create.ID, "store assigns the identity")
	assert.Equal(t, 0, a.PendingCreations(), "direct commit bypasses the queue")

	out = a.Tap(filledBucket("r1", 10, 0))
	require.NotNil(t, out.Update)
	assert.Equal(t, "r1", out.Update.ID)
	assert.Equal(t, "exercise", *out.Update.CategoryID)
	assert.Equal(t, ModeIdle, a.Mode())
}

func TestSelect_FlushBuildsDraftsFromQueues(t *testing.T) {
	a, _, _ := newTestAssigner()
	a.Tap(emptyBucketAt(9, 0))
	a.Tap(emptyBucketAt(14, 30))
	a.Tap(filledBucket("r1", 10, 0))

	flush := a.Select(domain.StrPtr("reading"))

	require.Len(t, flush.Creates, 2)
	assert.Equal(t, dayUTC(9, 0), flush.Creates[0].Start)
	assert.Equal(t, dayUTC(14, 30), flush.Creates[1].Start)
	for _, d := range flush.Creates {
		require.NotNil(t, d.CategoryID)
		assert.Equal(t, "reading", *d.CategoryID)
	}

	require.Len(t, flush.Updates, 1)
	assert.Equal(t, "r1", flush.Updates[0].ID)
	assert.Equal(t, "reading", *flush.Updates[0].CategoryID)

	assert.Equal(t, ModeCommitting, a.Mode())
}

func TestSelect_NilSelectionClearsWithoutFlush(t *testing.T) {
	a, _, _ := newTestAssigner()
	a.Tap(emptyBucketAt(9, 0))

	flush := a.Select(nil)
	assert.True(t, flush.Empty())
	assert.Nil(t, a.Selection())
	assert.Equal(t, 1, a.PendingCreations(), "clearing the selection keeps the queue")
	assert.Equal(t, ModeIdle, a.Mode())
}

func TestCompleteCreates_SuccessClearsQueueAndToasts(t *testing.T) {
	a, _, toasts := newTestAssigner()
	a.Tap(emptyBucketAt(9, 0))
	flush := a.Select(domain.StrPtr("reading"))
	require.Len(t, flush.Creates, 1)

	created := []*domain.TimeRecord{record("new1", dayUTC(9, 0))}
	a.CompleteCreates(created, nil)

	assert.Equal(t, 0, a.PendingCreations())
	assert.Equal(t, ModeIdle, a.Mode())
	require.Len(t, toasts.successes, 1)
	assert.Contains(t, toasts.successes[0], "1")
}

func TestCompleteCreates_EmptyResultKeepsQueue(t *testing.T) {
	a, _, toasts := newTestAssigner()
	a.Tap(emptyBucketAt(9, 0))
	a.Select(domain.StrPtr("reading"))

	a.CompleteCreates(nil, nil)

	assert.Equal(t, 1, a.PendingCreations(), "no silent drop on an empty batch result")
	require.Len(t, toasts.errors, 1)
}

func TestCompleteCreates_FailureKeepsQueue(t *testing.T) {
	a, _, _ := newTestAssigner()
	a.Tap(emptyBucketAt(9, 0))
	a.Select(domain.StrPtr("reading"))

	a.CompleteCreates(nil, errors.New("store down"))
	assert.Equal(t, 1, a.PendingCreations())
	assert.Equal(t, ModeIdle, a.Mode(), "machine settles even on failure")
}

func TestCompleteUpdates_IndependentOfCreates(t *testing.T) {
	a, _, _ := newTestAssigner()
	a.Tap(emptyBucketAt(9, 0))
	a.Tap(filledBucket("r1", 10, 0))
	flush := a.Select(domain.StrPtr("reading"))
	require.False(t, flush.Empty())

	// Update flush succeeds while the create flush fails.
	a.CompleteUpdates([]*domain.TimeRecord{record("r1", dayUTC(10, 0))}, nil)
	a.CompleteCreates(nil, errors.New("partial outage"))

	assert.Equal(t, 0, a.PendingUpdates())
	assert.Equal(t, 1, a.PendingCreations())
	assert.Equal(t, ModeIdle, a.Mode())
}

func TestClearPending(t *testing.T) {
	a, _, _ := newTestAssigner()
	a.Tap(emptyBucketAt(9, 0))
	a.Tap(filledBucket("r1", 10, 0))

	a.ClearPending()
	assert.Equal(t, 0, a.PendingCreations())
	assert.Equal(t, 0, a.PendingUpdates())
	assert.Equal(t, ModeIdle, a.Mode())
}

func TestSelection_ReturnsCopy(t *testing.T) {
	a, _, _ := newTestAssigner()
	a.Select(domain.StrPtr("reading"))

	sel := a.Selection()
	require.NotNil(t, sel)
	*sel = "mutated"
	assert.Equal(t, "reading", *a.Selection())
}
