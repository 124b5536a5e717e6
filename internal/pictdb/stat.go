package pictdb

import (
	"time"

	"gopkg.in/djherbis/times.v1"
)

// FileTimes reports the underlying database file's OS-level timestamps,
// surfaced alongside the header/metadata rendering in List's ListStdout
// mode, which the CLI's list command prints (the same "extended file stat" role
// gopkg.in/djherbis/times.v1 plays for go-diskfs's qcow2 FileStat).
type FileTimes struct {
	ModTime    time.Time
	AccessTime time.Time
	ChangeTime time.Time
	BirthTime  time.Time // zero if the platform/filesystem doesn't track it
}

// Times stats db's underlying file for its OS-level timestamps.
func (db *DB) Times() (FileTimes, error) {
	t, err := times.Stat(db.name)
	if err != nil {
		return FileTimes{}, newErr("Times", KindIO, err)
	}
	ft := FileTimes{
		ModTime:    t.ModTime(),
		AccessTime: t.AccessTime(),
	}
	if t.HasChangeTime() {
		ft.ChangeTime = t.ChangeTime()
	}
	if t.HasBirthTime() {
		ft.BirthTime = t.BirthTime()
	}
	return ft, nil
}
