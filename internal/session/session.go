// Package session binds editor events to the history manager, the writing
// timer and the input policy. The UI drives it from one event loop.
package session

import (
	"time"

	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/history"
	"github.com/chris-regnier/ideadice/internal/input"
	"github.com/chris-regnier/ideadice/internal/prompt"
	"github.com/chris-regnier/ideadice/internal/timer"
)

// DefaultAutosaveInterval is the typing quiet period before autosave.
const DefaultAutosaveInterval = 2 * time.Second

// Config holds per-session settings.
type Config struct {
	AutosaveInterval time.Duration
	NoBackspace      bool
}

// Ticket identifies one pending autosave. Only the newest ticket saves.
type Ticket struct {
	Seq   uint64
	After time.Duration
}

// Controller is the writing session. It is not safe for concurrent use.
type Controller struct {
	history  *history.Manager
	timer    *timer.Timer
	feedback *input.Feedback
	dice     *prompt.Dice
	cfg      Config

	text        string
	dirty       bool
	seq         uint64
	words       prompt.Words
	focused     bool
	noBackspace bool
}

// New returns a controller with a freshly rolled prompt.
func New(h *history.Manager, t *timer.Timer, f *input.Feedback, d *prompt.Dice, cfg Config) *Controller {
	if cfg.AutosaveInterval <= 0 {
		cfg.AutosaveInterval = DefaultAutosaveInterval
	}
	c := &Controller{
		history:     h,
		timer:       t,
		feedback:    f,
		dice:        d,
		cfg:         cfg,
		noBackspace: cfg.NoBackspace,
		focused:     true,
	}
	c.words = d.Roll()
	return c
}

// Edit applies a buffer change from the editor. While the on-screen entry
// is locked the change is refused and the buffer reverts to the saved
// content.
func (c *Controller) Edit(text string) bool {
	if c.history.IsCurrentContentLocked() {
		if e, ok := c.history.Current(); ok {
			c.text = e.Content
		}
		return false
	}
	if text == c.text {
		return true
	}
	c.text = text
	c.dirty = true
	if text != "" {
		c.timer.Start()
	}
	return true
}

// Keystroke supersedes any pending autosave and returns the new ticket.
func (c *Controller) Keystroke() Ticket {
	c.seq++
	return Ticket{Seq: c.seq, After: c.cfg.AutosaveInterval}
}

// Flush runs the autosave for t if no newer keystroke arrived since.
func (c *Controller) Flush(t Ticket) bool {
	if t.Seq != c.seq || !c.dirty {
		return false
	}
	c.history.Autosave(c.text)
	c.dirty = false
	return true
}

// SaveNow autosaves any pending edit immediately and cancels the ticket.
func (c *Controller) SaveNow() {
	c.seq++
	if c.dirty {
		c.history.Autosave(c.text)
		c.dirty = false
	}
}

// ToggleLock locks or unlocks the on-screen entry and pauses or resumes the
// writing timer to match. Pending edits are saved first.
func (c *Controller) ToggleLock() bool {
	c.SaveNow()
	if c.history.View().Kind == history.Unattached {
		return false
	}
	locked := c.history.ToggleLock()
	if locked {
		c.timer.Pause()
	} else {
		c.timer.Resume()
	}
	if e, ok := c.history.Current(); ok {
		c.text = e.Content
	}
	return locked
}

// Select puts a history entry on screen: locked entries read-only, the
// rest for editing. The writing timer restarts for the new session.
func (c *Controller) Select(id string) bool {
	if _, ok := c.history.Get(id); !ok {
		return false
	}
	// Flush first, then reread: the pending text may belong to id.
	c.SaveNow()
	e, ok := c.history.Get(id)
	if !ok {
		return false
	}
	if e.Locked {
		c.history.ViewLockedEntry(id)
	} else {
		c.history.SetActiveEntry(id)
	}
	c.text = e.Content
	c.dirty = false
	c.timer.Reset()
	return true
}

// NewWriting clears the editor, rolls new words and starts a fresh session.
func (c *Controller) NewWriting() {
	c.SaveNow()
	c.history.NewSession()
	c.text = ""
	c.dirty = false
	c.words = c.dice.Roll()
	c.timer.Reset()
}

// Delete removes a history entry.
func (c *Controller) Delete(id string) {
	c.history.DeleteEntry(id)
}

// LockEntry locks a history entry out of band. Pending edits to it are saved
// first.
func (c *Controller) LockEntry(id string) {
	if c.history.ActiveEntryID() == id {
		c.SaveNow()
	}
	c.history.LockEntry(id)
}

// HandleKey reports whether the editor must swallow key. When no-backspace
// mode is the reason, the feedback pulse fires and its schedule is returned.
func (c *Controller) HandleKey(key input.Key) (bool, *input.Schedule) {
	d := input.Decide(key, input.State{
		Locked:        c.Locked(),
		NoBackspace:   c.noBackspace,
		EditorFocused: c.focused,
	})
	if d.Reason == input.ReasonNoBackspace {
		s := c.feedback.Attempt()
		return true, &s
	}
	return d.Suppress, nil
}

// ApplyFeedback delivers a scheduled feedback step.
func (c *Controller) ApplyFeedback(gen int, on bool) { c.feedback.Apply(gen, on) }

// FeedbackActive reports whether the attempt pulse is showing.
func (c *Controller) FeedbackActive() bool { return c.feedback.Active() }

// Roll replaces the prompt words.
func (c *Controller) Roll() prompt.Words {
	c.words = c.dice.Roll()
	return c.words
}

// Words returns the current prompt.
func (c *Controller) Words() prompt.Words { return c.words }

// Text returns the editor buffer.
func (c *Controller) Text() string { return c.text }

// WordCount counts words in the buffer.
func (c *Controller) WordCount() int { return entry.WordCount(c.text) }

// Elapsed returns the active writing time.
func (c *Controller) Elapsed() time.Duration { return c.timer.Elapsed() }

// Locked reports whether the on-screen entry is locked.
func (c *Controller) Locked() bool { return c.history.IsCurrentContentLocked() }

// Pending reports whether an edit is waiting for autosave.
func (c *Controller) Pending() bool { return c.dirty }

// SetFocus records whether the editor has keyboard focus.
func (c *Controller) SetFocus(focused bool) { c.focused = focused }

// SetNoBackspace toggles forward-only writing.
func (c *Controller) SetNoBackspace(on bool) { c.noBackspace = on }

// NoBackspace reports whether forward-only writing is on.
func (c *Controller) NoBackspace() bool { return c.noBackspace }

// History exposes the manager for read access by the UI.
func (c *Controller) History() *history.Manager { return c.history }
