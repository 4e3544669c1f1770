package splice

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/crypto/blake2b"

	"github.com/gnvim/signalgen/internal/codegen/generr"
)

// TemplateSuffix is appended to the output path to find the template when
// no separate output path is given.
const TemplateSuffix = ".in"

const defaultPerm fs.FileMode = 0o644

// ArtifactPaths resolves the template and output paths. With an explicit
// output, template is read as-is; otherwise template+".in" is read and
// template itself is written.
func ArtifactPaths(template, output string) (in, out string) {
	if output == "" {
		return template + TemplateSuffix, template
	}
	return template, output
}

// ReadArtifact reads a whole artifact. The file is closed before returning.
func ReadArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, generr.ErrArtifactIO(path, err)
	}
	return data, nil
}

// OutputPerm keeps the mode of an existing output and falls back to 0644.
func OutputPerm(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return defaultPerm
}

// WriteArtifact writes data to path via a temp file + rename in the same
// directory, so a failed run never leaves a half-written output behind.
func WriteArtifact(path string, data []byte, perm fs.FileMode) (err error) {
	defer func() {
		if err != nil {
			err = generr.ErrArtifactIO(path, err)
		}
	}()

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, "."+base+".tmp.*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	ok := false
	defer func() {
		_ = f.Close()
		if !ok {
			_ = os.Remove(tmp)
		}
	}()

	if runtime.GOOS != "windows" {
		if err := f.Chmod(perm); err != nil {
			return err
		}
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// On Windows, os.Rename does not overwrite an existing destination.
	if runtime.GOOS == "windows" {
		_ = os.Remove(path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	ok = true
	return nil
}

// Digest is the hex BLAKE2b-256 of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CheckArtifact compares rendered with the current content of path and
// returns an ErrOutputDrift error when they differ or path is missing.
func CheckArtifact(path string, rendered []byte) error {
	want := Digest(rendered)
	current, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return generr.ErrOutputDrift(path, want, "<missing>")
	}
	if err != nil {
		return generr.ErrArtifactIO(path, err)
	}
	if got := Digest(current); got != want {
		return generr.ErrOutputDrift(path, want, got)
	}
	return nil
}
