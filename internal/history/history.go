// Package history owns the list of writing sessions and decides, on every
// debounced text change, whether to create an entry, update the one being
// edited, merge into an existing duplicate, or leave a locked entry alone.
package history

import (
	"log/slog"
	"slices"

	"github.com/chris-regnier/ideadice/internal/clock"
	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/logging"
	"github.com/chris-regnier/ideadice/internal/storage"
)

// ViewKind says what the writer has on screen.
type ViewKind int

const (
	// Unattached is a fresh session not yet backed by an entry.
	Unattached ViewKind = iota
	// Editing targets an unlocked entry with autosave.
	Editing
	// ViewingLocked shows a locked entry read-only.
	ViewingLocked
)

func (k ViewKind) String() string {
	switch k {
	case Editing:
		return "editing"
	case ViewingLocked:
		return "viewing-locked"
	default:
		return "unattached"
	}
}

// View is the entry currently on screen. EntryID is empty when Unattached.
type View struct {
	Kind    ViewKind
	EntryID string
}

// Manager is the entry lifecycle state machine. It is driven from a single
// event loop and is not safe for concurrent use.
type Manager struct {
	store   storage.EntryStore
	clock   clock.Clock
	log     *slog.Logger
	entries []entry.Entry
	view    View
	saveErr error
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source.
func WithClock(c clock.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// New loads the saved history from store. A load failure is logged and the
// manager starts with an empty list.
func New(store storage.EntryStore, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		clock: clock.Real{},
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}

	entries, err := store.Load()
	if err != nil {
		m.log.Warn("loading history failed; starting empty", "err", err)
		entries = nil
	}
	m.entries = entries
	m.log.Debug("history loaded", "entries", len(m.entries))
	return m
}

// Autosave records text against the session on screen.
func (m *Manager) Autosave(text string) {
	if text == "" {
		return
	}

	if m.view.Kind == Editing {
		if i := m.index(m.view.EntryID); i >= 0 && !m.entries[i].Locked {
			m.entries[i].SetContent(text, m.clock.Now())
			m.log.Debug("autosave updated entry", "entry_id", m.entries[i].ID)
			m.persist()
			return
		}
	}

	if m.view.Kind == ViewingLocked {
		return
	}

	if i := m.findDuplicate(text); i >= 0 {
		e := m.entries[i]
		e.UpdatedAt = m.clock.Now()
		m.entries = slices.Delete(m.entries, i, i+1)
		m.entries = slices.Insert(m.entries, 0, e)
		m.view = View{Kind: Editing, EntryID: e.ID}
		m.log.Debug("autosave merged duplicate", "entry_id", e.ID)
		m.persist()
		return
	}

	e, err := entry.New(text, m.clock.Now())
	if err != nil {
		m.log.Warn("autosave could not create entry", "err", err)
		return
	}
	m.entries = slices.Insert(m.entries, 0, e)
	m.view = View{Kind: Editing, EntryID: e.ID}
	m.log.Debug("autosave created entry", "entry_id", e.ID)
	m.persist()
}

// findDuplicate returns the first unlocked entry whose content equals text,
// or whose title and word count coincide with it.
func (m *Manager) findDuplicate(text string) int {
	title := entry.Title(text)
	words := entry.WordCount(text)
	return slices.IndexFunc(m.entries, func(e entry.Entry) bool {
		if e.Locked {
			return false
		}
		return e.Content == text || (e.Title() == title && e.WordCount() == words)
	})
}

// SetActiveEntry starts editing an existing unlocked entry. Unknown or
// locked entries are ignored.
func (m *Manager) SetActiveEntry(id string) bool {
	i := m.index(id)
	if i < 0 || m.entries[i].Locked {
		return false
	}
	m.view = View{Kind: Editing, EntryID: id}
	return true
}

// ViewLockedEntry shows an entry read-only.
func (m *Manager) ViewLockedEntry(id string) bool {
	if m.index(id) < 0 {
		return false
	}
	m.view = View{Kind: ViewingLocked, EntryID: id}
	return true
}

// ToggleLock locks the entry being edited or unlocks the entry being
// viewed. It reports whether the on-screen entry is now locked.
func (m *Manager) ToggleLock() bool {
	i := m.index(m.view.EntryID)
	if m.view.Kind == Unattached || i < 0 {
		return false
	}

	switch m.view.Kind {
	case ViewingLocked:
		m.entries[i].Locked = false
		m.view = View{Kind: Editing, EntryID: m.entries[i].ID}
	case Editing:
		m.entries[i].Locked = !m.entries[i].Locked
		if m.entries[i].Locked {
			m.view = View{Kind: ViewingLocked, EntryID: m.entries[i].ID}
		}
	}
	m.log.Debug("lock toggled", "entry_id", m.entries[i].ID, "locked", m.entries[i].Locked)
	m.persist()
	return m.entries[i].Locked
}

// LockEntry locks an entry out of band, e.g. from the history list. If it
// was being edited the session detaches from it.
func (m *Manager) LockEntry(id string) {
	i := m.index(id)
	if i < 0 {
		return
	}
	m.entries[i].Locked = true
	if m.view == (View{Kind: Editing, EntryID: id}) {
		m.view = View{}
	}
	m.persist()
}

// UnlockEntry clears an entry's lock. If it was on screen read-only it
// becomes the entry being edited.
func (m *Manager) UnlockEntry(id string) {
	i := m.index(id)
	if i < 0 {
		return
	}
	m.entries[i].Locked = false
	if m.view == (View{Kind: ViewingLocked, EntryID: id}) {
		m.view = View{Kind: Editing, EntryID: id}
	}
	m.persist()
}

// DeleteEntry removes an entry and detaches the session if it was on screen.
func (m *Manager) DeleteEntry(id string) {
	i := m.index(id)
	if i < 0 {
		return
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	if m.view.EntryID == id {
		m.view = View{}
	}
	m.log.Debug("entry deleted", "entry_id", id)
	m.persist()
}

// NewSession detaches from any entry so the next autosave starts fresh.
func (m *Manager) NewSession() {
	m.view = View{}
}

// IsCurrentContentLocked reports whether the on-screen entry is locked.
func (m *Manager) IsCurrentContentLocked() bool {
	e, ok := m.Current()
	return ok && e.Locked
}

// Current returns the on-screen entry, looked up fresh.
func (m *Manager) Current() (entry.Entry, bool) {
	if m.view.Kind == Unattached {
		return entry.Entry{}, false
	}
	return m.Get(m.view.EntryID)
}

// View returns the current session view.
func (m *Manager) View() View { return m.view }

// ActiveEntryID is the entry being edited, or "".
func (m *Manager) ActiveEntryID() string {
	if m.view.Kind != Editing {
		return ""
	}
	return m.view.EntryID
}

// ViewedLockedEntryID is the entry shown read-only, or "".
func (m *Manager) ViewedLockedEntryID() string {
	if m.view.Kind != ViewingLocked {
		return ""
	}
	return m.view.EntryID
}

// Entries returns a copy of the history, most recent first.
func (m *Manager) Entries() []entry.Entry {
	return slices.Clone(m.entries)
}

// Get looks up an entry by ID.
func (m *Manager) Get(id string) (entry.Entry, bool) {
	i := m.index(id)
	if i < 0 {
		return entry.Entry{}, false
	}
	return m.entries[i], true
}

func (m *Manager) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(m.entries, func(e entry.Entry) bool { return e.ID == id })
}

// persist saves the full list. Failures are logged and swallowed; the
// in-memory list stays authoritative and the next save reconciles.
func (m *Manager) persist() {
	m.saveErr = m.store.Save(m.entries)
	if m.saveErr != nil {
		m.log.Warn("saving history failed", "err", m.saveErr, "entries", len(m.entries))
	}
}

// SaveErr returns the error from the most recent save, or nil if it
// succeeded. One-shot callers check it after a mutation.
func (m *Manager) SaveErr() error { return m.saveErr }
