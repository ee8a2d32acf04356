package sounds

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"sync/atomic"

	"aoe/internal/logging"
)

// EventSettings controls playback for a single session state.
type EventSettings struct {
	Enabled bool
	// File overrides the default sound name for this state.
	File string
}

// Settings carries the playback configuration the session manager hands
// to the player.
type Settings struct {
	Enabled bool
	// Command overrides the detected audio player binary.
	Command string
	Events  map[State]EventSettings
}

// maxConcurrentSounds bounds simultaneous playback so rapid state
// transitions do not pile up audio processes.
const maxConcurrentSounds = 2

// Player plays session sounds through the platform audio command.
// Play is fire-and-forget: failures are logged, never returned.
type Player struct {
	lib      *Library
	settings Settings
	logger   *slog.Logger

	command    string
	args       []string
	available  bool
	concurrent atomic.Int32
}

// NewPlayer creates a player over the given library. A nil logger is
// replaced with a no-op logger.
func NewPlayer(lib *Library, settings Settings, logger *slog.Logger) *Player {
	command, args := detectAudioCommand(settings.Command)
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "sound-player")
	logger.Debug("sound player initialized",
		logging.Bool("audioAvailable", command != ""),
		logging.String("audioCommand", command),
		logging.String("platform", runtime.GOOS),
	)
	return &Player{
		lib:       lib,
		settings:  settings,
		logger:    logger,
		command:   command,
		args:      args,
		available: command != "",
	}
}

// Available reports whether an audio command was found on this platform.
func (p *Player) Available() bool {
	return p.available
}

// Play asynchronously plays the sound assigned to a session state.
// It does nothing when sounds are disabled globally or for the state,
// when no audio command exists, or when the concurrency cap is reached.
func (p *Player) Play(state State) {
	if !p.settings.Enabled {
		return
	}
	event, configured := p.settings.Events[state]
	if configured && !event.Enabled {
		p.logger.Debug("sound disabled for state", logging.String("state", state.String()))
		return
	}
	if !p.available {
		p.logger.Debug("no audio player available", logging.String("state", state.String()))
		return
	}

	entry, err := p.lib.ResolveState(state, event.File)
	if err != nil {
		p.logger.Debug("resolve sound failed", logging.String("state", state.String()), logging.Error(err))
		return
	}

	if p.concurrent.Add(1) > maxConcurrentSounds {
		p.concurrent.Add(-1)
		p.logger.Debug("concurrent sound limit reached", logging.String("state", state.String()))
		return
	}
	go p.playAsync(entry)
}

func (p *Player) playAsync(entry Entry) {
	defer p.concurrent.Add(-1)

	path := entry.Path
	if path == "" || !fileExists(path) {
		// Configured file vanished since resolution; fall back to the
		// embedded asset through a temp file.
		tmp, cleanup, err := p.stageEmbedded(entry)
		if err != nil {
			p.logger.Debug("stage fallback sound failed", logging.String("name", entry.Name), logging.Error(err))
			return
		}
		defer cleanup()
		path = tmp
	}

	if err := exec.Command(p.command, append(p.cloneArgs(), path)...).Run(); err != nil {
		p.logger.Debug("audio playback failed", logging.String("name", entry.Name), logging.Error(err))
	}
}

// PlayFile synchronously plays a sound by name, for `aoe sounds test`.
func (p *Player) PlayFile(ctx context.Context, name string) error {
	if !p.available {
		return fmt.Errorf("no audio player found on this platform (tried afplay, paplay, aplay)")
	}
	entry, err := p.lib.Resolve(name)
	if err != nil {
		return err
	}

	path := entry.Path
	if path == "" {
		tmp, cleanup, err := p.stageEmbedded(entry)
		if err != nil {
			return err
		}
		defer cleanup()
		path = tmp
	}

	cmd := exec.CommandContext(ctx, p.command, append(p.cloneArgs(), path)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play %s: %w", entry.File, err)
	}
	return nil
}

// stageEmbedded writes the embedded asset for an entry to a temp file so
// the external player can read it. The returned cleanup removes the file.
func (p *Player) stageEmbedded(entry Entry) (string, func(), error) {
	sound, ok := LookupBundled(entry.Name)
	if !ok {
		return "", nil, fmt.Errorf("sound %q has no bundled asset to fall back to", entry.Name)
	}
	data, err := bundledData(sound)
	if err != nil {
		return "", nil, err
	}

	tmp, err := os.CreateTemp("", "aoe-sound-*.ogg")
	if err != nil {
		return "", nil, fmt.Errorf("create temp sound file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("write temp sound file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("close temp sound file: %w", err)
	}
	cleanup := func() { _ = os.Remove(tmp.Name()) }
	return tmp.Name(), cleanup, nil
}

// cloneArgs copies the base args so appends never share a backing array
// across goroutines.
func (p *Player) cloneArgs() []string {
	args := make([]string, len(p.args), len(p.args)+1)
	copy(args, p.args)
	return args
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// detectAudioCommand returns the audio player binary and base arguments
// for the current platform, or an empty command when none is available.
// An explicit override skips detection.
func detectAudioCommand(override string) (string, []string) {
	if override != "" {
		if path, err := exec.LookPath(override); err == nil {
			return path, nil
		}
		return "", nil
	}
	switch runtime.GOOS {
	case "darwin":
		if path, err := exec.LookPath("afplay"); err == nil {
			return path, nil
		}
	case "linux":
		if path, err := exec.LookPath("paplay"); err == nil {
			return path, nil
		}
		if path, err := exec.LookPath("aplay"); err == nil {
			return path, []string{"-q"}
		}
	}
	return "", nil
}
