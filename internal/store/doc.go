// Package store holds the gpm configuration document.
//
// The document is a TOML file with three top-level tables, one per
// [model.Category]:
//
//	[watched.project]
//	name = "project"
//	path = "/home/user/code/project"
//	created = 2024-05-01T10:30:15Z
//	updated = 2024-05-01T10:30:15Z
//
//	[ignored]
//
//	[groups]
//	work = ["project"]
//
// # Store
//
// [Store] owns the decoded document for one run and exposes the entry
// lifecycle: [Store.AddEntry], [Store.RemoveEntry] and [Store.TransferEntry].
// Every failure is an [*Error] whose Kind can be matched with errors.Is
// against the sentinels ([ErrKeyAlreadyExists], [ErrUnknownKey], ...).
//
// Mutations only touch memory; [Store.Save] writes the document back.
package store
