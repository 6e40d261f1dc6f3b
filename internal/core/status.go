package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/inovacc/gpm/internal/git"
	"github.com/inovacc/gpm/internal/model"
)

// Status labels
const (
	LabelClean = "CLEAN"
	LabelDirty = "DIRTY"
)

// Repository is what status evaluation needs from an opened repository.
type Repository interface {
	Path() string
	IsBare(ctx context.Context) (bool, error)
	State(ctx context.Context) (string, error)
	ChangedFiles(ctx context.Context) ([]string, error)
	Remotes(ctx context.Context) ([]git.Remote, error)
	Head(ctx context.Context) (string, error)
}

var _ Repository = (*git.Repository)(nil)

// IsClean reports whether the index to working directory diff is empty.
// A repository whose index cannot be compared counts as dirty.
func IsClean(ctx context.Context, r Repository) bool {
	changed, err := r.ChangedFiles(ctx)
	if err != nil {
		return false
	}

	return len(changed) == 0
}

// Label returns LabelClean or LabelDirty.
func Label(ctx context.Context, r Repository) string {
	if IsClean(ctx, r) {
		return LabelClean
	}

	return LabelDirty
}

// FilterByStatus keeps r when IsClean(r) == wantClean || !IsClean(r) == wantDirty.
// With both flags false, or both true, every repository passes.
func FilterByStatus(ctx context.Context, repos []Repository, wantClean, wantDirty bool) []Repository {
	kept := make([]Repository, 0, len(repos))

	for _, r := range repos {
		clean := IsClean(ctx, r)
		if clean == wantClean || !clean == wantDirty {
			kept = append(kept, r)
		}
	}

	return kept
}

// Report is the best-effort status of one repository. Each lookup carries
// its own error; a failed lookup never hides the others.
type Report struct {
	Path       string
	Label      string
	IndexErr   error
	Bare       bool
	BareErr    error
	State      string
	StateErr   error
	Remotes    []git.Remote
	RemotesErr error
	Head       string
	HeadErr    error
}

// ReportLine is one rendered line of a Report
type ReportLine struct {
	Key         string
	Value       string
	Placeholder bool // Value stands in for a missing fact
}

// Placeholder values for facts that could not be determined
const (
	NoRemotes = "no remote configured"
	NoHead    = "no head (detached or unborn)"
	Unknown   = "unknown"

	NoWorkTree = "no working tree (bare repository)"
)

// BuildReport inspects r.
func BuildReport(ctx context.Context, r Repository) Report {
	rep := Report{
		Path:  r.Path(),
		Label: LabelClean,
	}

	changed, err := r.ChangedFiles(ctx)
	if err != nil || len(changed) > 0 {
		rep.Label = LabelDirty
	}

	rep.IndexErr = err

	rep.Bare, rep.BareErr = r.IsBare(ctx)
	rep.State, rep.StateErr = r.State(ctx)
	rep.Remotes, rep.RemotesErr = r.Remotes(ctx)
	rep.Head, rep.HeadErr = r.Head(ctx)

	return rep
}

// Lines renders the report as key/value pairs.
func (r Report) Lines() []ReportLine {
	lines := []ReportLine{
		{Key: "path", Value: r.Path},
		{Key: "is bare?", Value: unknownOr(r.BareErr, strconv.FormatBool(r.Bare)), Placeholder: r.BareErr != nil},
		{Key: "status", Value: r.Label},
	}

	// a dirty label may only mean the index could not be compared
	if r.IndexErr != nil {
		index := Unknown
		if errors.Is(r.IndexErr, git.ErrNoWorkTree) {
			index = NoWorkTree
		}

		lines = append(lines, ReportLine{Key: "index", Value: index, Placeholder: true})
	}

	lines = append(lines, ReportLine{Key: "state?", Value: unknownOr(r.StateErr, r.State), Placeholder: r.StateErr != nil})

	if r.RemotesErr != nil || len(r.Remotes) == 0 {
		lines = append(lines, ReportLine{Key: "remotes", Value: NoRemotes, Placeholder: true})
	} else {
		for _, rem := range r.Remotes {
			lines = append(lines, ReportLine{Key: "remote", Value: fmt.Sprintf("%s %s", rem.Name, git.SanitizeURL(rem.URL))})
		}
	}

	if r.HeadErr != nil || r.Head == "" {
		lines = append(lines, ReportLine{Key: "head", Value: NoHead, Placeholder: true})
	} else {
		lines = append(lines, ReportLine{Key: "head", Value: r.Head})
	}

	return lines
}

func unknownOr(err error, v string) string {
	if err != nil {
		return Unknown
	}

	return v
}

// OpenEntries opens the repository of every entry. Entries that cannot be
// opened are returned as *OpenError and skipped.
func OpenEntries(ctx context.Context, entries []model.Entry) ([]Repository, []error) {
	var (
		repos []Repository
		errs  []error
	)

	for _, e := range entries {
		repo, err := git.Open(ctx, e.Path)
		if err != nil {
			errs = append(errs, &OpenError{Name: e.Name, Path: e.Path, Err: err})

			continue
		}

		repos = append(repos, repo)
	}

	return repos, errs
}
