// Package pictdb implements a single-file image database: a self-contained
// blob store for JPEG images keyed by a picture id, with three cached
// resolutions (thumbnail, small, original), content-addressed deduplication,
// and in-place garbage collection.
//
// A database is one file on disk: a fixed header, followed by a fixed-size
// metadata table, followed by an append-only data region holding JPEG
// payloads. The layout and algorithms follow the ext4 superblock/inode table
// discipline of go-diskfs, scaled down to a single flat table instead of a
// tree of inodes and extents.
package pictdb

import (
	"os"

	"github.com/bits-and-blooms/bitset"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// Resolution is one of the three stored variants of a picture.
type Resolution int

const (
	// Thumb is the thumbnail variant.
	Thumb Resolution = iota
	// Small is the small variant.
	Small
	// Orig is the original, as-inserted variant.
	Orig
	// nbRes is the number of resolution variants.
	nbRes = 3
)

func (r Resolution) String() string {
	switch r {
	case Thumb:
		return "thumb"
	case Small:
		return "small"
	case Orig:
		return "orig"
	default:
		return "unknown"
	}
}

const (
	// MaxDBName is the maximum length, in bytes, of a database name.
	MaxDBName = 31
	// MaxPicID is the maximum length, in bytes, of a picture id.
	MaxPicID = 127
	// MaxMaxFiles is the upper bound max_files is clamped to at create time.
	MaxMaxFiles = 100000
	// MaxThumbRes is the maximum thumbnail resolution dimension.
	MaxThumbRes = 128
	// MaxSmallRes is the maximum small resolution dimension.
	MaxSmallRes = 512
	// DefMaxFiles is the default number of slots in a new database.
	DefMaxFiles = 10
	// DefThumbRes is the default thumbnail resolution dimension.
	DefThumbRes = 64
	// DefSmallRes is the default small resolution dimension.
	DefSmallRes = 256

	catalogBanner = "EPFL PictDB binary"

	shaSize = 32
)

// CreateParams configures a new database at creation time, mirroring the
// teacher's ext4.Params passed into ext4.Create.
type CreateParams struct {
	MaxFiles int
	ThumbRes [2]uint16 // width, height
	SmallRes [2]uint16 // width, height
}

// DB is an open pictDB database handle. It owns the underlying file and the
// in-memory metadata table for its lifetime; callers must call Close on
// every exit path.
type DB struct {
	name     string
	file     *os.File
	header   header
	table    []slot
	occupied *bitset.BitSet // mirrors slot.isValid == nonEmpty, for O(1)-ish allocation
	codec    Codec
	hasher   Hasher
	log      *logrus.Entry
}

// Name returns the database's path, as given to Create or Open.
func (db *DB) Name() string {
	return db.name
}

// MaxFiles returns the clamped, immutable slot count of this database.
func (db *DB) MaxFiles() int {
	return int(db.header.maxFiles)
}

// NumFiles returns the header's num_files count of NON_EMPTY slots; it is
// not recounted from the metadata table.
func (db *DB) NumFiles() int {
	return int(db.header.numFiles)
}

// Version returns the current db_version.
func (db *DB) Version() uint32 {
	return db.header.version
}

// ThumbRes returns the immutable (width, height) of the thumbnail variant.
func (db *DB) ThumbRes() (uint16, uint16) {
	return db.header.thumbW, db.header.thumbH
}

// SmallRes returns the immutable (width, height) of the small variant.
func (db *DB) SmallRes() (uint16, uint16) {
	return db.header.smallW, db.header.smallH
}

// WithCodec overrides the default JPEG codec. Intended for tests and for
// callers that need a non-default image backend.
func (db *DB) WithCodec(c Codec) *DB {
	db.codec = c
	return db
}

// WithHasher overrides the default content hasher.
func (db *DB) WithHasher(h Hasher) *DB {
	db.hasher = h
	return db
}

// WithLogger overrides the structured logger used for this handle's
// diagnostic fields. The core engine itself does not log; the entry is only
// carried on the handle and handed back by Logger.
func (db *DB) WithLogger(entry *logrus.Entry) *DB {
	db.log = entry
	return db
}

// Logger returns the structured logger associated with this handle, for use
// by the CLI and HTTP collaborators. The core engine never logs through it.
func (db *DB) Logger() *logrus.Entry {
	return db.log
}

func newUUID() string {
	return uuid.NewV4().String()
}
