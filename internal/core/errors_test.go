package core

import (
	"errors"
	"os"
	"testing"
)

func TestScanRootError(t *testing.T) {
	err := &ScanRootError{Path: "/home/user/code", Err: os.ErrPermission}

	expected := "cannot scan /home/user/code: permission denied"
	if err.Error() != expected {
		t.Errorf("ScanRootError.Error() = %q, want %q", err.Error(), expected)
	}

	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is should find the inner error")
	}
}

func TestOpenError(t *testing.T) {
	innerErr := errors.New("not a git repository")
	err := &OpenError{Name: "a", Path: "/code/a", Err: innerErr}

	expected := "cannot open repository a at /code/a: not a git repository"
	if err.Error() != expected {
		t.Errorf("OpenError.Error() = %q, want %q", err.Error(), expected)
	}

	var target *OpenError
	if !errors.As(err, &target) {
		t.Error("errors.As should find *OpenError")
	}

	if !errors.Is(err, innerErr) {
		t.Error("OpenError.Unwrap() should return the inner error")
	}
}
