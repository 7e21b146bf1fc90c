package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSuppress(t *testing.T) {
	tests := []struct {
		name        string
		key         Key
		locked      bool
		noBackspace bool
		focused     bool
		want        bool
	}{
		{"lock suppresses delete regardless of focus", KeyDelete, true, false, false, true},
		{"lock and no-backspace", KeyDelete, true, true, true, true},
		{"no-backspace needs focus", KeyDelete, false, true, false, false},
		{"no-backspace with focus", KeyDelete, false, true, true, true},
		{"plain delete passes", KeyDelete, false, false, true, false},
		{"other key passes when locked", KeyOther, true, false, false, false},
		{"other key passes in no-backspace mode", KeyOther, false, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSuppress(tt.key, tt.locked, tt.noBackspace, tt.focused))
		})
	}
}

func TestDecide_LockTakesPriority(t *testing.T) {
	d := Decide(KeyDelete, State{Locked: true, NoBackspace: true, EditorFocused: true})
	assert.True(t, d.Suppress)
	assert.Equal(t, ReasonLocked, d.Reason)

	d = Decide(KeyDelete, State{NoBackspace: true, EditorFocused: true})
	assert.Equal(t, ReasonNoBackspace, d.Reason)

	d = Decide(KeyOther, State{Locked: true})
	assert.Equal(t, Decision{}, d)
}

func TestParseKey(t *testing.T) {
	assert.Equal(t, KeyDelete, ParseKey("backspace"))
	assert.Equal(t, KeyDelete, ParseKey("delete"))
	assert.Equal(t, KeyDelete, ParseKey("ctrl+w"))
	assert.Equal(t, KeyDelete, ParseKey("alt+backspace"))
	assert.Equal(t, KeyOther, ParseKey("a"))
	assert.Equal(t, KeyOther, ParseKey("enter"))
}
