// Package input translates raw device state into abstract navigation
// requests. Each adapter is a pure producer: once per poll it inspects a
// snapshot of its device (pressed keys, button and axis state, cursor
// position) and emits zero or more focus.Requests. The adapters never touch
// focus state themselves; requests go through the host's queue.
//
// An absent device simply produces empty snapshots and therefore no
// requests; that is not an error condition.
package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Key names a keyboard key the way the host reports it ("w", "up", "space").
type Key string

// Button identifies a gamepad button independent of any backend's numbering.
type Button int

// Gamepad buttons. The compass names follow the physical diamond layout.
const (
	ButtonSouth Button = iota
	ButtonEast
	ButtonWest
	ButtonNorth
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonStart
	ButtonSelect
	buttonCount
)

// Mapping binds keys and buttons to navigation requests. The zero value is
// not useful; start from DefaultMapping and override fields, or load
// overrides from a YAML file with LoadMapping.
type Mapping struct {
	// Deadzone is the stick magnitude below which the gamepad adapter
	// treats the stick as centered.
	Deadzone float64 `yaml:"deadzone"`

	KeyUp    Key `yaml:"key_up"`
	KeyDown  Key `yaml:"key_down"`
	KeyLeft  Key `yaml:"key_left"`
	KeyRight Key `yaml:"key_right"`

	KeyUpAlt    Key `yaml:"key_up_alt"`
	KeyDownAlt  Key `yaml:"key_down_alt"`
	KeyLeftAlt  Key `yaml:"key_left_alt"`
	KeyRightAlt Key `yaml:"key_right_alt"`

	KeyAction   Key `yaml:"key_action"`
	KeyCancel   Key `yaml:"key_cancel"`
	KeyNext     Key `yaml:"key_next"`
	KeyNextAlt  Key `yaml:"key_next_alt"`
	KeyPrevious Key `yaml:"key_previous"`

	ActionButton   Button `yaml:"action_button"`
	CancelButton   Button `yaml:"cancel_button"`
	PreviousButton Button `yaml:"previous_button"`
	NextButton     Button `yaml:"next_button"`
}

// DefaultMapping returns the stock bindings: WASD plus arrows for movement,
// Space to act, Backspace to cancel, E or Tab for the next scope and Q for
// the previous one; on a pad, south activates, east cancels, and the
// triggers cycle scopes. The deadzone default of 0.36 keeps worn sticks from
// flooding the queue.
func DefaultMapping() Mapping {
	return Mapping{
		Deadzone:       0.36,
		KeyUp:          "w",
		KeyDown:        "s",
		KeyLeft:        "a",
		KeyRight:       "d",
		KeyUpAlt:       "up",
		KeyDownAlt:     "down",
		KeyLeftAlt:     "left",
		KeyRightAlt:    "right",
		KeyAction:      "space",
		KeyCancel:      "backspace",
		KeyNext:        "e",
		KeyNextAlt:     "tab",
		KeyPrevious:    "q",
		ActionButton:   ButtonSouth,
		CancelButton:   ButtonEast,
		PreviousButton: ButtonLeftTrigger,
		NextButton:     ButtonRightTrigger,
	}
}

// LoadMapping reads a YAML override file on top of the defaults. Fields the
// file omits keep their default binding.
func LoadMapping(path string) (Mapping, error) {
	m := DefaultMapping()
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read mapping: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse mapping %s: %w", path, err)
	}
	if m.Deadzone < 0 || m.Deadzone >= 1 {
		return m, fmt.Errorf("parse mapping %s: deadzone %v out of range [0, 1)", path, m.Deadzone)
	}
	return m, nil
}
