// Package core provides the business logic layer for gpm.
//
// This package contains the repository discovery, reconciliation and status
// logic, separated from UI concerns. Functions here return errors and results
// instead of printing; rendering belongs to the cmd package.
//
// # Discovery
//
// A [Scanner] walks a directory tree, following symbolic links, and reports
// the parent of every .git directory it meets. [FilterHidden] then drops
// repositories that live below a dot-directory.
//
// # Reconciliation
//
// [Reconcile] compares discovered repositories with the watched and ignored
// entries of a store and either reports the new ones or adds them to a
// category. Saving the store is left to the caller.
//
// # Status
//
// A repository is clean when its index to working directory diff is empty.
// [FilterByStatus] selects repositories by that status and [BuildReport]
// gathers a best-effort summary of one repository.
package core
