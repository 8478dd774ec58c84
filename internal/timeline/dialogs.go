package timeline

// DialogID identifies a modal surface in the UI.
type DialogID string

const (
	DialogLegend  DialogID = "legend"
	DialogMood    DialogID = "mood"
	DialogNotes   DialogID = "notes"
	DialogOptions DialogID = "options"
)

// DialogState tracks one dialog's visibility flags.
type DialogState struct {
	Collapsed   bool
	PickingMode bool
}

// DialogSet is an explicit registry of modal surfaces keyed by identity.
// Opening one dialog in picking mode forces every other dialog into a
// collapsed, non-picking state.
type DialogSet struct {
	states map[DialogID]DialogState
}

// NewDialogSet registers the given dialogs, all collapsed.
func NewDialogSet(ids ...DialogID) *DialogSet {
	states := make(map[DialogID]DialogState, len(ids))
	for _, id := range ids {
		states[id] = DialogState{Collapsed: true}
	}
	return &DialogSet{states: states}
}

// State returns the flags for id. Unknown dialogs read as collapsed.
func (s *DialogSet) State(id DialogID) DialogState {
	if st, ok := s.states[id]; ok {
		return st
	}
	return DialogState{Collapsed: true}
}

// Open expands id without entering picking mode.
func (s *DialogSet) Open(id DialogID) {
	s.states[id] = DialogState{Collapsed: false}
}

// OpenPicking expands id with the picking flag set and collapses all other
// dialogs.
func (s *DialogSet) OpenPicking(id DialogID) {
	for other := range s.states {
		if other != id {
			s.states[other] = DialogState{Collapsed: true}
		}
	}
	s.states[id] = DialogState{Collapsed: false, PickingMode: true}
}

// Collapse closes id and clears its picking flag.
func (s *DialogSet) Collapse(id DialogID) {
	s.states[id] = DialogState{Collapsed: true}
}

// CollapseAll closes every dialog.
func (s *DialogSet) CollapseAll() {
	for id := range s.states {
		s.states[id] = DialogState{Collapsed: true}
	}
}

// ExitPicking clears the picking flag on id but leaves it open.
func (s *DialogSet) ExitPicking(id DialogID) {
	st := s.State(id)
	st.PickingMode = false
	s.states[id] = st
}

// Picking reports whether any dialog is currently in picking mode.
func (s *DialogSet) Picking() bool {
	for _, st := range s.states {
		if st.PickingMode && !st.Collapsed {
			return true
		}
	}
	return false
}
