package pictdb

import (
	"os"
	"strconv"

	"github.com/pkg/xattr"
)

// setPictdbXattr best-effort tags f with the database name and current
// version as extended attributes, so OS tooling (getfattr) can identify a
// pictDB file without parsing the binary header. This is pure enrichment:
// filesystems that don't support xattrs (tmpfs without the mount option,
// non-Unix platforms) simply don't get the tag, and no caller observes the
// failure.
func setPictdbXattr(f *os.File, name string, version uint32) {
	_ = xattr.FSet(f, "user.pictdb.name", []byte(name))
	_ = xattr.FSet(f, "user.pictdb.version", []byte(strconv.FormatUint(uint64(version), 10)))
}

// readPictdbXattr returns the name/version tags set by setPictdbXattr, if
// the filesystem carries them. Used by List's ListStdout rendering.
func readPictdbXattr(path string) (name string, version string, ok bool) {
	nameBytes, err := xattr.Get(path, "user.pictdb.name")
	if err != nil {
		return "", "", false
	}
	versionBytes, err := xattr.Get(path, "user.pictdb.version")
	if err != nil {
		return string(nameBytes), "", true
	}
	return string(nameBytes), string(versionBytes), true
}
