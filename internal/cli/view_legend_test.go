package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gridlog/gridlog/internal/testutil"
	"github.com/gridlog/gridlog/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegendView_SelectEmitsPick(t *testing.T) {
	state, _ := testTimelineState(t)
	a := testutil.NewTestCategory("Deep Work")
	b := testutil.NewTestCategory("Exercise")
	require.NoError(t, state.App.Categories.Create(context.Background(), a))
	require.NoError(t, state.App.Categories.Create(context.Background(), b))
	state.Categories = append(state.Categories, a, b)

	v := newLegendView(state)
	v.Update(keyMsg("j"))
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := runCmd(t, cmd)
	pick, ok := msg.(categoryPickedMsg)
	require.True(t, ok)
	require.NotNil(t, pick.id)
	assert.Equal(t, b.ID, *pick.id)
}

func TestLegendView_ZeroClearsSelection(t *testing.T) {
	state, _ := testTimelineState(t)
	v := newLegendView(state)

	_, cmd := v.Update(keyMsg("0"))
	msg := runCmd(t, cmd)
	pick, ok := msg.(categoryPickedMsg)
	require.True(t, ok)
	assert.Nil(t, pick.id)
}

func TestLegendView_TitleReflectsPickingMode(t *testing.T) {
	state, _ := testTimelineState(t)
	v := newLegendView(state)
	assert.Equal(t, "Legend", v.Title())

	state.Engine.Dialogs.OpenPicking(timeline.DialogLegend)
	assert.Equal(t, "Pick a category", v.Title())
}
