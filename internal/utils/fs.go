package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WritableDir creates dir when missing and probes it with a temp file.
func WritableDir(dir string) bool {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warnf("Cannot create directory %s: %v", dir, err)
		return false
	}
	probe, err := os.CreateTemp(dir, ".write_test*")
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dir, err)
		return false
	}
	probe.Close()
	os.Remove(probe.Name())
	return true
}

// ExecutableDir returns the directory of the running binary, the last
// resort for the config dir.
func ExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locating executable")
	}
	return filepath.Dir(execPath), nil
}

// WriteTOMLFile encodes data next to filePath and renames it into place, so
// readers never see a half written file.
func WriteTOMLFile(data any, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".*")
	if err != nil {
		return errors.Wrap(err, "creating temp config")
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "encoding %s", filePath)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp config")
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return errors.Wrapf(err, "replacing %s", filePath)
	}
	return nil
}
