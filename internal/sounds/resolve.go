package sounds

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Library resolves sound names against a sounds directory, letting user
// files shadow the bundled defaults. Bundled assets are used only when no
// user file with the same stem exists.
type Library struct {
	dir string
}

// NewLibrary creates a library over the given sounds directory. The
// directory does not have to exist; an empty or missing directory exposes
// the bundled sounds only.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// Dir returns the sounds directory this library reads from.
func (l *Library) Dir() string {
	return l.dir
}

// Entry is one playable sound visible to the host application.
type Entry struct {
	// Name is the file stem.
	Name string
	// File is the filename backing the entry.
	File string
	// Path is the on-disk location for user files; empty when the entry
	// is served from the embedded bundle.
	Path string
	// State is the session state bound to this name by default, if any.
	State State
	// Description is the bundled description, empty for user-only sounds.
	Description string
	// Bundled reports whether an embedded asset exists for this name.
	Bundled bool
	// UserFile reports whether a file in the sounds directory backs this
	// entry.
	UserFile bool
}

// userExtensions are the formats users may drop into the sounds directory.
// .ogg wins over .wav when both exist for the same stem.
var userExtensions = []string{".ogg", ".wav"}

// Resolve returns the playable entry for name, preferring a user file in
// the sounds directory over the bundled asset.
func (l *Library) Resolve(name string) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, fmt.Errorf("sound name is required")
	}

	bundled, isBundled := LookupBundled(name)

	for _, ext := range userExtensions {
		path := filepath.Join(l.dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			entry := Entry{
				Name:     name,
				File:     name + ext,
				Path:     path,
				Bundled:  isBundled,
				UserFile: true,
			}
			if isBundled {
				entry.State = bundled.State
				entry.Description = bundled.Description
			}
			return entry, nil
		}
	}

	if isBundled {
		return Entry{
			Name:        name,
			File:        bundled.File,
			State:       bundled.State,
			Description: bundled.Description,
			Bundled:     true,
		}, nil
	}
	return Entry{}, fmt.Errorf("sound %q not found in %s or in the bundled set", name, l.dir)
}

// ResolveState returns the entry that should play for a session state.
// An override name (from configuration) replaces the default assignment.
func (l *Library) ResolveState(state State, override string) (Entry, error) {
	name := strings.TrimSpace(override)
	if name == "" {
		sound, ok := DefaultFor(state)
		if !ok {
			return Entry{}, fmt.Errorf("no default sound for state %q", state)
		}
		name = sound.Name
	}
	return l.Resolve(name)
}

// Data returns the audio bytes for an entry, reading the user file when
// present and the embedded asset otherwise.
func (l *Library) Data(entry Entry) ([]byte, error) {
	if entry.UserFile {
		data, err := os.ReadFile(entry.Path)
		if err != nil {
			return nil, fmt.Errorf("read sound %s: %w", entry.Path, err)
		}
		return data, nil
	}
	sound, ok := LookupBundled(entry.Name)
	if !ok {
		return nil, fmt.Errorf("sound %q has no bundled asset", entry.Name)
	}
	return bundledData(sound)
}

// List returns the merged view of the sounds directory and the bundled
// set, sorted by name. A user file shadows the bundled asset of the same
// stem and appears once.
func (l *Library) List() ([]Entry, error) {
	byName := make(map[string]Entry)

	for _, sound := range Bundled() {
		byName[sound.Name] = Entry{
			Name:        sound.Name,
			File:        sound.File,
			State:       sound.State,
			Description: sound.Description,
			Bundled:     true,
		}
	}

	dirEntries, err := os.ReadDir(l.dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read sounds directory %q: %w", l.dir, err)
	}
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if ext != ".ogg" && ext != ".wav" {
			continue
		}
		stem := strings.TrimSuffix(de.Name(), filepath.Ext(de.Name()))
		entry, exists := byName[stem]
		if exists && entry.UserFile && strings.ToLower(filepath.Ext(entry.File)) == ".ogg" {
			// .ogg already claimed this stem.
			continue
		}
		entry.Name = stem
		entry.File = de.Name()
		entry.Path = filepath.Join(l.dir, de.Name())
		entry.UserFile = true
		if bundled, ok := LookupBundled(stem); ok {
			entry.Bundled = true
			entry.State = bundled.State
			entry.Description = bundled.Description
		}
		byName[stem] = entry
	}

	result := make([]Entry, 0, len(byName))
	for _, entry := range byName {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
