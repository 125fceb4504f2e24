package materialize

import (
	"os"
	"path/filepath"
)

// writeFileAtomic writes data to path using a temp-file + fsync + rename
// strategy so that a crash mid-write never leaves the target truncated or
// half-substituted. The temp file is created in the target's parent
// directory to guarantee same-filesystem rename semantics on POSIX; any
// observer only ever sees the fully-old or fully-new content.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".spaenv-*.tmp")
	if err != nil {
		return &IOError{Op: "create temp file for", Path: path, Err: err}
	}

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &IOError{Op: "write temp file for", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &IOError{Op: "sync temp file for", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close temp file for", Path: path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return &IOError{Op: "set permissions on temp file for", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "rename temp file to", Path: path, Err: err}
	}

	success = true
	return nil
}
