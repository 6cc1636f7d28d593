/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/untillpro/gitstatus/report"
)

const mergeHeadRef = plumbing.ReferenceName("MERGE_HEAD")

// repoState reports an in-progress merge. MERGE_HEAD exists from the moment
// the merge stops on conflicts until it is concluded or aborted; whether
// conflicts remain comes from the changed-path list.
func (r *Repo) repoState(changes []report.ChangedPath) report.RepoState {
	if _, err := r.repo.Storer.Reference(mergeHeadRef); err != nil {
		return report.RepoState{}
	}

	state := report.RepoState{Merging: true}
	for _, rec := range changes {
		if rec.Flags&report.Unmerged != 0 {
			state.HasConflicts = true
			break
		}
	}

	return state
}
