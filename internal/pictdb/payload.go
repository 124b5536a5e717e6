package pictdb

import "io"

// readPayload reads size bytes at offset from the data region (§4.1).
func (db *DB) readPayload(offset int64, size uint32) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := db.file.Seek(offset, 0); err != nil {
		return nil, newErr("readPayload", KindIO, err)
	}
	if _, err := io.ReadFull(db.file, buf); err != nil {
		return nil, newErr("readPayload", KindIO, err)
	}
	return buf, nil
}

// appendPayload appends payload at EOF and returns the offset it was
// written at (§4.1).
func (db *DB) appendPayload(payload []byte) (int64, error) {
	offset, err := db.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, newErr("appendPayload", KindIO, err)
	}
	if _, err := db.file.Write(payload); err != nil {
		return 0, newErr("appendPayload", KindIO, err)
	}
	return offset, nil
}
