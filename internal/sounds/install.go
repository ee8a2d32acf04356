package sounds

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"aoe/internal/fileutil"
)

// InstallResult summarizes what the installer did per bundled sound.
type InstallResult struct {
	Dir string
	// Installed sounds were written fresh.
	Installed []string
	// UpToDate sounds already matched the bundled bytes.
	UpToDate []string
	// Preserved sounds exist with user-modified contents and were left
	// alone (use force to replace them).
	Preserved []string
}

// Installer copies the bundled assets into a sounds directory.
type Installer struct {
	dir  string
	lock *flock.Flock
}

// NewInstaller creates an installer targeting dir.
func NewInstaller(dir string) *Installer {
	return &Installer{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, ".install.lock")),
	}
}

// Install copies every bundled sound into the target directory. Files that
// already match the bundled bytes are skipped; files a user has replaced
// are preserved unless force is set. Concurrent installs into the same
// directory are serialized with a file lock.
func (i *Installer) Install(force bool) (*InstallResult, error) {
	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sounds directory %q: %w", i.dir, err)
	}

	ok, err := i.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire install lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another install is already running for this sounds directory")
	}
	defer func() {
		_ = i.lock.Unlock()
	}()

	result := &InstallResult{Dir: i.dir}
	for _, sound := range Bundled() {
		data, err := bundledData(sound)
		if err != nil {
			return nil, err
		}

		target := filepath.Join(i.dir, sound.File)
		same, err := fileutil.SameContents(target, data)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fresh install below
		case err != nil:
			return nil, fmt.Errorf("inspect %s: %w", target, err)
		case same:
			result.UpToDate = append(result.UpToDate, sound.Name)
			continue
		case !force:
			result.Preserved = append(result.Preserved, sound.Name)
			continue
		}

		if err := fileutil.WriteFileAtomic(target, data, 0o644); err != nil {
			return nil, fmt.Errorf("install %s: %w", sound.File, err)
		}
		result.Installed = append(result.Installed, sound.Name)
	}
	return result, nil
}
