// Package sounds manages the bundled sound effects that aoe plays on
// session state transitions.
//
// It owns the static manifest (which file maps to which session state),
// the per-platform location of the user's sounds directory, installation
// of the bundled CC0 assets into that directory, and resolution of
// user-supplied replacement files over the bundled defaults. Playback
// shells out to the platform audio player so no audio stack is linked
// into the binary.
package sounds
