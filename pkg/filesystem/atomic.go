package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// WriteFileAtomic replaces name with data without ever exposing a partially
// written file: the bytes go to a temporary file in the same directory, which
// is then renamed over the target. On failure the target is left as it was
// and the temporary file is removed.
func WriteFileAtomic(fsys FS, name string, data []byte, perm fs.FileMode) (err error) {
	dir := filepath.Dir(name)
	tmp, err := fsys.CreateTemp(dir, "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = fsys.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err = fsys.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = fsys.Rename(tmpName, name); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
