package search

// EmptyMessage is shown when Enter is pressed on an empty field.
const EmptyMessage = "Whoops, can’t be empty…"

// State is the validation display state of one mounted field.
// The zero value is the resting state: no error shown.
type State struct {
	HasError     bool
	ErrorMessage string

	observed     bool
	lastExternal bool

	// used when the caller does not pass a ref
	ref *InputRef
}

func (s *State) ClearError() {
	s.HasError = false
	s.ErrorMessage = ""
}

// KeyDown applies one key press. The error is always cleared first.
// For Enter the value is read through ref: an empty value shows
// EmptyMessage, anything else is passed to onSearch unchanged.
// The result reports whether the key was Enter, in which case the
// caller should prevent the host's default handling.
func (s *State) KeyDown(enter bool, ref *InputRef, onSearch func(string)) bool {
	s.ClearError()
	if !enter {
		return false
	}
	if ref == nil {
		return true
	}
	value := ref.Value()
	if value == "" {
		s.HasError = true
		s.ErrorMessage = EmptyMessage
		return true
	}
	if onSearch != nil {
		onSearch(value)
	}
	return true
}

// ObserveError feeds the caller's error flag into the state. Only a
// change from the previously observed value (or the first observation)
// overwrites HasError; the message is left alone.
func (s *State) ObserveError(external *bool) {
	value := external != nil && *external
	if s.observed && value == s.lastExternal {
		return
	}
	s.observed = true
	s.lastExternal = value
	s.HasError = value
}

func (s *State) ownRef() *InputRef {
	if s.ref == nil {
		s.ref = NewInputRef()
	}
	return s.ref
}
