package report

import (
	"os"
	"path/filepath"

	"wcl_rankings/share"
)

// Write replaces the file at path with content. The text goes to a temporary
// file in the same directory first, so a failed write leaves the old report
// untouched. A missing directory is an error; it is not created.
func Write(path string, content string) (err error) {
	dir := filepath.Dir(path)

	fs, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return share.WrapKind(share.ErrIO, err, "%s", path)
	}
	tmp := fs.Name()
	defer func() {
		if err != nil {
			fs.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = fs.WriteString(content); err != nil {
		return share.WrapKind(share.ErrIO, err, "%s", path)
	}
	if err = fs.Close(); err != nil {
		return share.WrapKind(share.ErrIO, err, "%s", path)
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return share.WrapKind(share.ErrIO, err, "%s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return share.WrapKind(share.ErrIO, err, "%s", path)
	}

	return nil
}
