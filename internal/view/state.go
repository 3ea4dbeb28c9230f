package view

// ViewState is what the controller currently displays. The zero value is
// the no-selection state.
type ViewState struct {
	EntryID  string
	Language string // active code tab; "" when the entry has no examples
}

// Selected reports whether an entry is displayed.
func (s ViewState) Selected() bool { return s.EntryID != "" }
