// Package git provides a thin git client and a repository handle used to
// inspect local repositories.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client runs git commands in a repository directory
type Client struct {
	GitPath string // Path to git executable
	RepoDir string // Repository directory
}

// NewClient creates a new git client
func NewClient() *Client {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		gitPath = "git"
	}

	return &Client{
		GitPath: gitPath,
	}
}

// NewClientForRepo creates a client for a specific repository
func NewClientForRepo(repoDir string) *Client {
	c := NewClient()
	c.RepoDir = repoDir

	return c
}

// Command creates a git command.
// Note: Do not set Stdout/Stderr if you plan to use CombinedOutput()
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)

	if c.RepoDir != "" {
		cmd.Dir = c.RepoDir
	}

	return cmd
}

// Output runs a git command and returns its trimmed stdout.
// Failures are returned as *GitError carrying stderr.
func (c *Client) Output(ctx context.Context, args ...string) (string, error) {
	var stderr bytes.Buffer

	cmd := c.Command(ctx, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", NewGitError(args, stderr.String(), err)
	}

	return strings.TrimSpace(string(out)), nil
}

// GitError represents a git command error
type GitError struct {
	ExitCode int
	Stderr   string
	Args     []string
	err      error
}

func (e *GitError) Error() string {
	if strings.TrimSpace(e.Stderr) == "" {
		return fmt.Errorf("git %s failed: %w", strings.Join(e.Args, " "), e.err).Error()
	}

	return fmt.Sprintf("git %s failed: %s", strings.Join(e.Args, " "), strings.TrimSpace(e.Stderr))
}

func (e *GitError) Unwrap() error {
	return e.err
}
