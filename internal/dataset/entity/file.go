package entity

import "errors"

// ErrInvalidFilename is returned for names that would escape the flat data directory.
var ErrInvalidFilename = errors.New("invalid file name")

// Fingerprint identifies one version of a file on disk.
type Fingerprint struct {
	Size    int64 `json:"size"`
	ModTime int64 `json:"mod_time"` // unix nanoseconds
}

type FileEventKind string

const (
	FileUploaded FileEventKind = "UPLOADED"
	FileDeleted  FileEventKind = "DELETED"
)

// FileEvent announces a change in the data directory.
type FileEvent struct {
	ID       int64         `json:"id"`
	Kind     FileEventKind `json:"kind"`
	Filename string        `json:"filename"`
	At       int64         `json:"at"`
}
