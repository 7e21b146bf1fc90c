// Package input decides which key events the editor must swallow.
//
// The only key ever suppressed here is delete/backspace: always while the
// on-screen entry is locked, and in no-backspace mode while the editor has
// focus. Blocking other keys on a locked entry is the editor's business.
package input

// Key classifies a key event for the suppression policy.
type Key int

const (
	KeyOther Key = iota
	KeyDelete
)

// ParseKey maps a bubbletea-style key name to a Key. Word and line
// deletions from the textarea keymap count as deletes.
func ParseKey(name string) Key {
	switch name {
	case "backspace", "delete", "ctrl+h",
		"ctrl+w", "alt+backspace", "ctrl+u", "ctrl+k", "alt+delete", "alt+d":
		return KeyDelete
	default:
		return KeyOther
	}
}

// State is the live editor state the policy reads.
type State struct {
	Locked        bool
	NoBackspace   bool
	EditorFocused bool
}

// Reason says why a key was suppressed.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonLocked
	ReasonNoBackspace
)

func (r Reason) String() string {
	switch r {
	case ReasonLocked:
		return "locked"
	case ReasonNoBackspace:
		return "no-backspace"
	default:
		return "none"
	}
}

// Decision is the outcome for a single key event.
type Decision struct {
	Suppress bool
	Reason   Reason
}

// Decide applies the policy. The lock is checked before no-backspace mode.
func Decide(key Key, s State) Decision {
	if key != KeyDelete {
		return Decision{}
	}
	if s.Locked {
		return Decision{Suppress: true, Reason: ReasonLocked}
	}
	if s.NoBackspace && s.EditorFocused {
		return Decision{Suppress: true, Reason: ReasonNoBackspace}
	}
	return Decision{}
}

// ShouldSuppress reports whether the key event must be consumed.
func ShouldSuppress(key Key, locked, noBackspace, editorFocused bool) bool {
	return Decide(key, State{Locked: locked, NoBackspace: noBackspace, EditorFocused: editorFocused}).Suppress
}
