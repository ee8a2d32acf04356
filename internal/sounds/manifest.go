package sounds

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State identifies a session lifecycle phase that can trigger a sound cue.
type State string

const (
	StateStart   State = "start"
	StateRunning State = "running"
	StateWaiting State = "waiting"
	StateIdle    State = "idle"
	StateError   State = "error"
)

// States lists every session state in display order.
var States = []State{StateStart, StateRunning, StateWaiting, StateIdle, StateError}

// ParseState converts a configuration or CLI value into a State.
func ParseState(value string) (State, error) {
	state := State(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range States {
		if state == known {
			return state, nil
		}
	}
	return "", fmt.Errorf("unknown session state %q (expected one of: start, running, waiting, idle, error)", value)
}

func (s State) String() string {
	return string(s)
}

// DisplayName returns the state name formatted for table output.
// A Caser is stateful, so build one per call.
func (s State) DisplayName() string {
	return cases.Title(language.English).String(string(s))
}

// Licensing facts for the bundled assets. The attribution line is printed
// after installation; CC0 itself does not require it, but the credit is
// preserved wherever the assets are redistributed.
const (
	License     = "CC0 1.0 Universal"
	Attribution = "SubspaceAudio"
	SourceURL   = "https://opengameart.org/content/80-cc0-rpg-sfx"
)

// Sound describes one bundled asset.
type Sound struct {
	// Name is the file stem used to reference the sound from the CLI
	// and from configuration.
	Name string
	// File is the bundled filename.
	File string
	// State is the session state this sound plays for by default.
	// Empty for the additional (unassigned) sounds.
	State State
	// Description is free text shown in listings.
	Description string
}

// defaultSounds is the fixed mapping from session states to bundled files.
// The assignment is a convention consumed by the session manager, not
// something derived at runtime.
var defaultSounds = []Sound{
	{Name: "session_start", File: "session_start.ogg", State: StateStart, Description: "session created or resumed"},
	{Name: "session_running", File: "session_running.ogg", State: StateRunning, Description: "agent started working"},
	{Name: "session_waiting", File: "session_waiting.ogg", State: StateWaiting, Description: "agent is waiting for input"},
	{Name: "session_idle", File: "session_idle.ogg", State: StateIdle, Description: "agent finished and went idle"},
	{Name: "session_error", File: "session_error.ogg", State: StateError, Description: "session hit an error"},
}

// additionalSounds ship alongside the defaults so users can reassign
// transitions without hunting for files of their own.
var additionalSounds = []Sound{
	{Name: "blip", File: "blip.ogg", Description: "tiny interface blip"},
	{Name: "chime", File: "chime.ogg", Description: "short bright chime"},
	{Name: "coin", File: "coin.ogg", Description: "classic RPG coin pickup"},
	{Name: "fanfare", File: "fanfare.ogg", Description: "longer victory fanfare"},
	{Name: "thud", File: "thud.ogg", Description: "low percussive thud"},
}

// Bundled returns every bundled sound, defaults first, each group sorted
// by name. The returned slice is a copy.
func Bundled() []Sound {
	result := make([]Sound, 0, len(defaultSounds)+len(additionalSounds))
	result = append(result, defaultSounds...)
	result = append(result, additionalSounds...)
	sort.SliceStable(result, func(i, j int) bool {
		if (result[i].State != "") != (result[j].State != "") {
			return result[i].State != ""
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// DefaultFor returns the bundled sound assigned to the given session state.
func DefaultFor(state State) (Sound, bool) {
	for _, s := range defaultSounds {
		if s.State == state {
			return s, true
		}
	}
	return Sound{}, false
}

// LookupBundled returns the bundled sound with the given name.
func LookupBundled(name string) (Sound, bool) {
	for _, s := range Bundled() {
		if s.Name == name {
			return s, true
		}
	}
	return Sound{}, false
}

// bundledData reads the embedded bytes for a bundled sound.
func bundledData(s Sound) ([]byte, error) {
	data, err := bundledFS.ReadFile(bundledDir + "/" + s.File)
	if err != nil {
		return nil, fmt.Errorf("read bundled sound %s: %w", s.File, err)
	}
	return data, nil
}
