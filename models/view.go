package models

// InputState is the host-owned state of a single text input.
type InputState struct {
	Value          string
	Focused        bool
	CursorPosition int
}

func (s *InputState) Reset() {
	s.Value = ""
	s.CursorPosition = 0
}

// MatchText is one segment of an item split around a search hit.
type MatchText struct {
	Text  string
	Match bool
}

// ItemView is a searchable line shown by the host below the field.
type ItemView struct {
	Text       string
	MatchTexts []MatchText
}
