package pictdb

import (
	"errors"
	"fmt"
)

// Kind classifies a pictDB error so callers (CLI, HTTP) can branch on it
// without string-matching, mirroring the error taxonomy of the original
// pictDBM error.h (ERR_INVALID_ARGUMENT, ERR_DUPLICATE_ID, ...).
type Kind int

const (
	// KindInvalidArgument is a nil pointer, bad open mode, or illegal parameter.
	KindInvalidArgument Kind = iota
	// KindInvalidFilename is a database path longer than MaxDBName.
	KindInvalidFilename
	// KindInvalidPicID is an empty, oversized, or absent-on-lookup picture id.
	KindInvalidPicID
	// KindDuplicateID is an insert whose id is already present.
	KindDuplicateID
	// KindFileNotFound is a read on an absent id.
	KindFileNotFound
	// KindFullDatabase is an insert when every slot is occupied.
	KindFullDatabase
	// KindMaxFiles is a create with max_files out of range.
	KindMaxFiles
	// KindResolutions is an out-of-range resolution code or resize dimension.
	KindResolutions
	// KindOutOfMemory is an allocation failure.
	KindOutOfMemory
	// KindIO is a seek/read/write/rename/remove failure.
	KindIO
	// KindCodec is a JPEG decode/resize/encode failure. Named for the
	// abstract Codec collaborator (§1, §4.4) rather than the spec's literal
	// VIPS taxonomy entry (§7), since this module never assumes libvips.
	KindCodec
	// KindNotEnoughArguments is a missing CLI or HTTP parameter.
	KindNotEnoughArguments
	// KindInvalidCommand is an unrecognized CLI command.
	KindInvalidCommand
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindInvalidFilename:
		return "INVALID_FILENAME"
	case KindInvalidPicID:
		return "INVALID_PICID"
	case KindDuplicateID:
		return "DUPLICATE_ID"
	case KindFileNotFound:
		return "FILE_NOT_FOUND"
	case KindFullDatabase:
		return "FULL_DATABASE"
	case KindMaxFiles:
		return "MAX_FILES"
	case KindResolutions:
		return "RESOLUTIONS"
	case KindOutOfMemory:
		return "OUT_OF_MEMORY"
	case KindIO:
		return "IO"
	case KindCodec:
		return "CODEC"
	case KindNotEnoughArguments:
		return "NOT_ENOUGH_ARGUMENTS"
	case KindInvalidCommand:
		return "INVALID_COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Error is a pictDB error: a Kind plus the context that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pictdb: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("pictdb: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newErr(op string, kind Kind, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// ErrorKind extracts the Kind from err if it (or something it wraps) is a
// *Error, returning ok=false otherwise.
func ErrorKind(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
