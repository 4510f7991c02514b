package gioui

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/io/key"
	"gioui.org/unit"
	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window      WindowPreferences
		KeyBindings []KeyBinding `yaml:"keybindings"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}

	// KeyBinding binds a key, with modifiers, to a named action. An empty
	// Action unbinds the key.
	KeyBinding struct {
		Key                        string
		Shortcut, Ctrl, Shift, Alt bool
		Action                     string
	}

	// KeyMap resolves key presses to action names.
	KeyMap struct {
		actions map[key.Event]string
		hints   map[string]string
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

const configDirName = "beeptrack"

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	if err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences); err != nil {
		panic(fmt.Errorf("failed to unmarshal default preferences: %w", err))
	}
	return preferences
}

// ReadCustomConfigYml decodes filename from the user config directory into
// target, which must be a pointer. A missing file is not an error and leaves
// target untouched.
func ReadCustomConfigYml(filename string, target any) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(configDir, configDirName, filename)
	bytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(bytes, target); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// MakePreferences returns the default preferences overridden by the user's
// preferences.yml. User key bindings are applied after the default ones. The
// error is only a warning: the returned preferences are always usable.
func MakePreferences() (Preferences, error) {
	preferences := loadDefaultPreferences()
	defaultBindings := preferences.KeyBindings
	preferences.KeyBindings = nil
	err := ReadCustomConfigYml("preferences.yml", &preferences)
	preferences.KeyBindings = append(defaultBindings, preferences.KeyBindings...)
	return preferences, err
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}

// KeyMap builds the key map from the bindings; later bindings win.
func (p Preferences) KeyMap() KeyMap {
	m := KeyMap{actions: map[key.Event]string{}, hints: map[string]string{}}
	for _, kb := range p.KeyBindings {
		var mods key.Modifiers
		if kb.Shortcut {
			mods |= key.ModShortcut
		}
		if kb.Ctrl {
			mods |= key.ModCtrl
		}
		if kb.Shift {
			mods |= key.ModShift
		}
		if kb.Alt {
			mods |= key.ModAlt
		}
		keyEvent := key.Event{Name: key.Name(kb.Key), Modifiers: mods, State: key.Press}
		if action, ok := m.actions[keyEvent]; ok {
			delete(m.hints, action)
		}
		if kb.Action == "" {
			delete(m.actions, keyEvent)
			continue
		}
		m.actions[keyEvent] = kb.Action
		text := kb.Key
		if modString := strings.ReplaceAll(mods.String(), "-", "+"); modString != "" {
			text = modString + "+" + text
		}
		m.hints[kb.Action] = text
	}
	return m
}

// Action returns the action bound to the key press e.
func (m KeyMap) Action(e key.Event) (string, bool) {
	action, ok := m.actions[key.Event{Name: e.Name, Modifiers: e.Modifiers, State: key.Press}]
	return action, ok
}

// Hint appends the key of action to hint, formatted with format, if the
// action is bound.
func (m KeyMap) Hint(hint, format, action string) string {
	if k := m.hints[action]; k != "" {
		return hint + fmt.Sprintf(format, k)
	}
	return hint
}
