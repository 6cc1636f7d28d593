/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	goGitPkg "github.com/go-git/go-git/v5"
	"github.com/pkg/errors"

	"github.com/untillpro/gitstatus/report"
)

// changedPaths maps the go-git worktree status to flag records. Conflicted
// entries become pure Unmerged records and never combine with index or
// worktree flags.
func (r *Repo) changedPaths(status goGitPkg.Status) ([]report.ChangedPath, error) {
	changes := make([]report.ChangedPath, 0, len(status))
	for path, st := range status {
		if st.Staging == goGitPkg.Unmodified && st.Worktree == goGitPkg.Unmodified {
			continue
		}
		if st.Staging == goGitPkg.UpdatedButUnmerged || st.Worktree == goGitPkg.UpdatedButUnmerged {
			changes = append(changes, report.ChangedPath{Flags: report.Unmerged, OldPath: path})
			continue
		}

		var flags report.StatusFlag
		switch st.Staging {
		case goGitPkg.Added:
			flags |= report.IndexNew
		case goGitPkg.Modified:
			flags |= report.IndexModified
		case goGitPkg.Deleted:
			flags |= report.IndexDeleted
		case goGitPkg.Renamed:
			flags |= report.IndexRenamed
		}
		switch st.Worktree {
		case goGitPkg.Untracked:
			flags |= report.WorktreeNew
		case goGitPkg.Modified:
			flags |= report.WorktreeModified
		case goGitPkg.Deleted:
			flags |= report.WorktreeDeleted
		}
		if flags == 0 {
			continue
		}

		rec := report.ChangedPath{Flags: flags, OldPath: path}
		if flags&report.IndexRenamed != 0 && st.Extra != "" {
			rec.OldPath, rec.NewPath = st.Extra, path
		}
		changes = append(changes, rec)
	}
	sortChanges(changes)

	return r.detectRenames(changes)
}

// detectRenames collapses a staged-new path and a staged-deleted path with
// identical blob content into one renamed record. go-git does not pair them
// itself, so exact-content matching is done here: the new path's hash from
// the index against the deleted path's hash from the HEAD tree.
func (r *Repo) detectRenames(changes []report.ChangedPath) ([]report.ChangedPath, error) {
	var added, deleted []int
	for i, rec := range changes {
		switch rec.Flags {
		case report.IndexNew:
			added = append(added, i)
		case report.IndexDeleted:
			deleted = append(deleted, i)
		}
	}
	if len(added) == 0 || len(deleted) == 0 {
		return changes, nil
	}

	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, errors.Wrap(err, "index read failed")
	}
	head, err := r.repo.Head()
	if err != nil {
		return changes, nil
	}
	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, errors.Wrap(err, "HEAD commit is not readable")
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, errors.Wrap(err, "HEAD tree is not readable")
	}

	dropped := make(map[int]bool, len(deleted))
	for _, ai := range added {
		entry, err := idx.Entry(changes[ai].OldPath)
		if err != nil {
			continue
		}
		for _, di := range deleted {
			if dropped[di] {
				continue
			}
			old, err := tree.FindEntry(changes[di].OldPath)
			if err != nil || old.Hash != entry.Hash {
				continue
			}
			changes[ai] = report.ChangedPath{
				Flags:   report.IndexRenamed,
				OldPath: changes[di].OldPath,
				NewPath: changes[ai].OldPath,
			}
			dropped[di] = true
			break
		}
	}
	if len(dropped) == 0 {
		return changes, nil
	}

	kept := make([]report.ChangedPath, 0, len(changes))
	for i, rec := range changes {
		if !dropped[i] {
			kept = append(kept, rec)
		}
	}

	return kept, nil
}
