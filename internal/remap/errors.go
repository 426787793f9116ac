package remap

import "fmt"

// DirError means the asset directory itself could not be listed. Nothing
// was processed.
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("cannot access directory %s: %v", e.Path, e.Err)
}

func (e *DirError) Unwrap() error { return e.Err }

// FileError means a specific input could not be read or its dark variant
// could not be written. Files after it in the batch were not processed.
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
