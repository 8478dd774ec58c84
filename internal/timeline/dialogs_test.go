package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialogSet_StartsCollapsed(t *testing.T) {
	s := NewDialogSet(DialogLegend, DialogMood)
	assert.True(t, s.State(DialogLegend).Collapsed)
	assert.True(t, s.State(DialogMood).Collapsed)
	assert.False(t, s.Picking())
}

func TestDialogSet_OpenPickingCollapsesOthers(t *testing.T) {
	s := NewDialogSet(DialogLegend, DialogMood, DialogNotes)
	s.Open(DialogMood)
	s.Open(DialogNotes)

	s.OpenPicking(DialogLegend)

	legend := s.State(DialogLegend)
	assert.False(t, legend.Collapsed)
	assert.True(t, legend.PickingMode)
	assert.True(t, s.State(DialogMood).Collapsed)
	assert.True(t, s.State(DialogNotes).Collapsed)
	assert.True(t, s.Picking())
}

func TestDialogSet_ExitPickingKeepsDialogOpen(t *testing.T) {
	s := NewDialogSet(DialogLegend)
	s.OpenPicking(DialogLegend)

	s.ExitPicking(DialogLegend)

	st := s.State(DialogLegend)
	assert.False(t, st.Collapsed)
	assert.False(t, st.PickingMode)
	assert.False(t, s.Picking())
}

func TestDialogSet_UnknownDialogReadsCollapsed(t *testing.T) {
	s := NewDialogSet(DialogLegend)
	assert.True(t, s.State(DialogOptions).Collapsed)
}
