package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// Repository state names, derived from the marker files git leaves in the git directory
const (
	StateNormal               = "normal"
	StateMerge                = "merge"
	StateRevert               = "revert"
	StateCherryPick           = "cherry-pick"
	StateBisect               = "bisect"
	StateRebase               = "rebase"
	StateRebaseInteractive    = "rebase-interactive"
	StateRebaseMerge          = "rebase-merge"
	StateApplyMailbox         = "apply-mailbox"
	StateApplyMailboxOrRebase = "apply-mailbox-or-rebase"
)

// ErrDetachedHead is returned by Head when HEAD does not point at a branch
var ErrDetachedHead = errors.New("HEAD is detached")

// Remote is a configured remote
type Remote struct {
	Name string
	URL  string
}

// Repository is an opened local repository
type Repository struct {
	client *Client
	path   string
	gitDir string
}

// Open opens the repository rooted at path. Paths that are not repositories,
// including subdirectories of one, fail with an error for which
// IsNotRepository reports true.
func Open(ctx context.Context, path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", abs)
	}

	client := NewClientForRepo(abs)

	gitDir, err := client.Output(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return nil, err
	}

	if err := ensureRoot(ctx, client, abs, gitDir); err != nil {
		return nil, err
	}

	return &Repository{
		client: client,
		path:   abs,
		gitDir: gitDir,
	}, nil
}

// ensureRoot fails when abs only lies inside a repository. git resolves any
// subdirectory to the enclosing repository.
func ensureRoot(ctx context.Context, client *Client, abs, gitDir string) error {
	top, err := client.Output(ctx, "rev-parse", "--show-toplevel")

	switch {
	case err != nil && !IsNotWorkTree(err):
		return err
	case err != nil || top == "":
		// bare repository, or abs is the git directory itself
		top = gitDir
	}

	if !sameDir(top, abs) {
		return fmt.Errorf("%w: %s is inside %s", ErrNotRepository, abs, top)
	}

	return nil
}

func sameDir(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}

	bi, err := os.Stat(b)
	if err != nil {
		return false
	}

	return os.SameFile(ai, bi)
}

// Path returns the absolute path the repository was opened at
func (r *Repository) Path() string {
	return r.path
}

// GitDir returns the absolute git directory
func (r *Repository) GitDir() string {
	return r.gitDir
}

// IsBare reports whether the repository has no working tree
func (r *Repository) IsBare(ctx context.Context) (bool, error) {
	out, err := r.client.Output(ctx, "rev-parse", "--is-bare-repository")
	if err != nil {
		return false, err
	}

	return out == "true", nil
}

// State returns the in-progress operation of the repository, StateNormal when none.
func (r *Repository) State(_ context.Context) (string, error) {
	if _, err := os.Stat(r.gitDir); err != nil {
		return "", err
	}

	switch {
	case r.exists("rebase-merge", "interactive"):
		return StateRebaseInteractive, nil
	case r.exists("rebase-merge"):
		return StateRebaseMerge, nil
	case r.exists("rebase-apply", "rebasing"):
		return StateRebase, nil
	case r.exists("rebase-apply", "applying"):
		return StateApplyMailbox, nil
	case r.exists("rebase-apply"):
		return StateApplyMailboxOrRebase, nil
	case r.exists("MERGE_HEAD"):
		return StateMerge, nil
	case r.exists("REVERT_HEAD"):
		return StateRevert, nil
	case r.exists("CHERRY_PICK_HEAD"):
		return StateCherryPick, nil
	case r.exists("BISECT_LOG"):
		return StateBisect, nil
	}

	return StateNormal, nil
}

func (r *Repository) exists(elem ...string) bool {
	_, err := os.Stat(filepath.Join(append([]string{r.gitDir}, elem...)...))

	return err == nil
}

// ChangedFiles lists the paths that differ between the index and the working
// directory. Untracked files are not part of that diff. An error means the
// index could not be compared; a bare repository yields ErrNoWorkTree.
func (r *Repository) ChangedFiles(ctx context.Context) ([]string, error) {
	out, err := r.client.Output(ctx, "--no-optional-locks", "diff", "--name-only", "--no-ext-diff")
	if err != nil {
		if IsNotWorkTree(err) {
			return nil, fmt.Errorf("%w: %w", ErrNoWorkTree, err)
		}

		return nil, err
	}

	if out == "" {
		return nil, nil
	}

	return strings.Split(out, "\n"), nil
}

// Remotes reads the configured remotes from the repository config, sorted by name.
func (r *Repository) Remotes(_ context.Context) ([]Remote, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{AllowBooleanKeys: true}, filepath.Join(r.commonDir(), "config"))
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}

	var remotes []Remote

	for _, sec := range cfg.Sections() {
		name, ok := subsection(sec.Name(), "remote")
		if !ok {
			continue
		}

		remotes = append(remotes, Remote{
			Name: name,
			URL:  sec.Key("url").String(),
		})
	}

	sort.Slice(remotes, func(i, j int) bool {
		return remotes[i].Name < remotes[j].Name
	})

	return remotes, nil
}

// Head returns the short name of the branch HEAD points at.
func (r *Repository) Head(ctx context.Context) (string, error) {
	out, err := r.client.Output(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil {
		if GetExitCode(err) == 1 {
			return "", ErrDetachedHead
		}

		return "", err
	}

	if out == "" {
		return "", ErrDetachedHead
	}

	return out, nil
}

// commonDir returns the directory shared by all worktrees, which holds the config.
func (r *Repository) commonDir() string {
	data, err := os.ReadFile(filepath.Join(r.gitDir, "commondir"))
	if err != nil {
		return r.gitDir
	}

	dir := strings.TrimSpace(string(data))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(r.gitDir, dir)
	}

	return filepath.Clean(dir)
}

// subsection extracts "origin" from a section named `remote "origin"`.
func subsection(section, kind string) (string, bool) {
	prefix := kind + ` "`
	if !strings.HasPrefix(section, prefix) || !strings.HasSuffix(section, `"`) || len(section) <= len(prefix) {
		return "", false
	}

	return section[len(prefix) : len(section)-1], true
}
