package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data to dst via a uniquely named temp file in the
// same directory followed by a rename, so readers never observe a partial
// file. The written bytes are hash-verified before the rename; the temp
// file is removed on any failure.
func WriteFileAtomic(dst string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(dst)
	tmp := filepath.Join(dir, "."+filepath.Base(dst)+".tmp-"+uuid.NewString())

	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	hasher := sha256.New()
	written, err := io.Copy(io.MultiWriter(out, hasher), bytes.NewReader(data))
	if err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}

	if written != int64(len(data)) {
		_ = os.Remove(tmp)
		return fmt.Errorf("write size mismatch: wrote %d of %d bytes", written, len(data))
	}
	if !bytes.Equal(hasher.Sum(nil), HashBytes(data)) {
		_ = os.Remove(tmp)
		return fmt.Errorf("write hash mismatch: data corrupted during write")
	}

	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// HashBytes returns the SHA256 digest of data.
func HashBytes(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// HashFile returns the SHA256 digest of the file at path.
func HashFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}

// SameContents reports whether the file at path exists and holds exactly
// the given bytes.
func SameContents(path string, data []byte) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.Size() != int64(len(data)) {
		return false, nil
	}
	sum, err := HashFile(path)
	if err != nil {
		return false, err
	}
	return bytes.Equal(sum, HashBytes(data)), nil
}
