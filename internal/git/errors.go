package git

import (
	"errors"
	"os/exec"
	"strings"
)

// Common error messages from git
const (
	errMsgNotRepository = "not a git repository"
	errMsgNotWorkTree   = "must be run in a work tree"
)

var (
	// ErrNotRepository is returned by Open for a path that is not a repository root
	ErrNotRepository = errors.New(errMsgNotRepository)

	// ErrNoWorkTree is returned by ChangedFiles for a repository without a working tree
	ErrNoWorkTree = errors.New("repository has no working tree")
)

// IsNotRepository checks if the error indicates not a git repository
func IsNotRepository(err error) bool {
	return errors.Is(err, ErrNotRepository) || containsError(err, errMsgNotRepository)
}

// IsNotWorkTree checks if the error comes from a command that needs a work tree
func IsNotWorkTree(err error) bool {
	return containsError(err, errMsgNotWorkTree)
}

// containsError checks if the error contains a specific message
func containsError(err error, msg string) bool {
	if err == nil {
		return false
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return strings.Contains(strings.ToLower(gitErr.Stderr), strings.ToLower(msg))
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(msg))
}

// GetExitCode returns the exit code from a git error, or -1 if not available
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

// NewGitError creates a GitError from command output and error
func NewGitError(args []string, stderr string, err error) *GitError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &GitError{
		ExitCode: exitCode,
		Stderr:   stderr,
		Args:     args,
		err:      err,
	}
}
