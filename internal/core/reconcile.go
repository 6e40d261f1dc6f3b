package core

import (
	"path/filepath"
	"time"

	"github.com/inovacc/gpm/internal/model"
	"github.com/inovacc/gpm/internal/store"
)

// RepoState is the terminal state of a discovered repository after reconciliation
type RepoState string

const (
	StateAlreadyTracked RepoState = "already-tracked"
	StateReported       RepoState = "reported"
	StateAdded          RepoState = "added"
	StateAddFailed      RepoState = "add-failed"
)

// Outcome is the result for one discovered repository
type Outcome struct {
	Name  string    `json:"name"`
	Path  string    `json:"path"`
	State RepoState `json:"state"`
	Err   error     `json:"-"`
	Error string    `json:"error,omitempty"`
}

// ReconcileResult groups the outcomes of a reconciliation run
type ReconcileResult struct {
	Category string    `json:"category"`
	DiffOnly bool      `json:"diff_only"`
	Tracked  []Outcome `json:"already_tracked"`
	Reported []Outcome `json:"reported,omitempty"`
	Added    []Outcome `json:"added,omitempty"`
	Failed   []Outcome `json:"failed,omitempty"`
}

// TotalNew returns how many discovered repositories were not tracked yet.
func (r *ReconcileResult) TotalNew() int {
	return len(r.Reported) + len(r.Added) + len(r.Failed)
}

// RepoName infers the entry name of a repository from its root path.
func RepoName(path string) string {
	return filepath.Base(filepath.Clean(path))
}

// Reconcile compares discovered repository roots with the store. A repository
// is tracked when its name is a key under watched or ignored before anything
// is added. With diffOnly the new ones are only reported; otherwise each is
// added to category, and a failing add (such as a second repository with the
// same name) is recorded without stopping the others. Nothing is saved here.
func Reconcile(discovered []string, st *store.Store, category model.Category, diffOnly bool) *ReconcileResult {
	result := &ReconcileResult{
		Category: category.Namespace(),
		DiffOnly: diffOnly,
		Tracked:  make([]Outcome, 0),
	}

	tracked := make(map[string]bool, len(discovered))
	for _, path := range discovered {
		name := RepoName(path)
		tracked[name] = st.Tracked(name)
	}

	for _, path := range discovered {
		name := RepoName(path)
		out := Outcome{Name: name, Path: path}

		switch {
		case tracked[name]:
			out.State = StateAlreadyTracked
			result.Tracked = append(result.Tracked, out)
		case diffOnly:
			out.State = StateReported
			result.Reported = append(result.Reported, out)
		default:
			if err := st.AddEntry(name, model.NewEntry(name, path, time.Now()), category); err != nil {
				out.State = StateAddFailed
				out.Err = err
				out.Error = err.Error()
				result.Failed = append(result.Failed, out)

				continue
			}

			out.State = StateAdded
			result.Added = append(result.Added, out)
		}
	}

	return result
}
