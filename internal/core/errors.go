package core

import (
	"errors"
	"fmt"
)

var errNotDirectory = errors.New("not a directory")

// ScanRootError indicates the scan root itself cannot be walked
type ScanRootError struct {
	Path string
	Err  error
}

func (e *ScanRootError) Error() string {
	return fmt.Sprintf("cannot scan %s: %v", e.Path, e.Err)
}

func (e *ScanRootError) Unwrap() error {
	return e.Err
}

// OpenError indicates a tracked path could not be opened as a repository
type OpenError struct {
	Name string
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open repository %s at %s: %v", e.Name, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
