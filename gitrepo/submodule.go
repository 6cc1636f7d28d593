/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"fmt"

	goGitPkg "github.com/go-git/go-git/v5"
	"github.com/untillpro/goutils/logger"

	"github.com/untillpro/gitstatus/report"
)

// submoduleDetail queries every initialized submodule once and keeps the
// ones with something to report. Failures degrade to "no detail" for the
// affected path instead of failing the snapshot.
func (r *Repo) submoduleDetail(w *goGitPkg.Worktree) map[string]report.SubmoduleStatus {
	subs, err := w.Submodules()
	if err != nil {
		logger.Verbose(fmt.Sprintf("submodule listing failed: %v", err))

		return nil
	}

	detail := make(map[string]report.SubmoduleStatus, len(subs))
	for _, sub := range subs {
		st, err := sub.Status()
		if err != nil {
			logger.Verbose(fmt.Sprintf("submodule %s status failed: %v", sub.Config().Path, err))
			continue
		}
		if st.Current.IsZero() {
			// not checked out
			continue
		}

		flags := report.SubmoduleStatus{NewCommits: st.Current != st.Expected}
		flags.ModifiedContent, flags.UntrackedContent = submoduleContent(sub)
		if flags == (report.SubmoduleStatus{}) {
			continue
		}
		detail[sub.Config().Path] = flags
	}

	return detail
}

// submoduleContent opens the submodule's own worktree and classifies its
// dirt: untracked paths vs any other change.
func submoduleContent(sub *goGitPkg.Submodule) (modified, untracked bool) {
	repo, err := sub.Repository()
	if err != nil {
		return false, false
	}
	w, err := repo.Worktree()
	if err != nil {
		return false, false
	}
	status, err := w.Status()
	if err != nil {
		return false, false
	}

	for _, st := range status {
		switch {
		case st.Worktree == goGitPkg.Untracked:
			untracked = true
		case st.Staging != goGitPkg.Unmodified || st.Worktree != goGitPkg.Unmodified:
			modified = true
		}
	}

	return modified, untracked
}

// mergeSubmoduleChanges makes sure every submodule with detail shows up in
// the changed-path list as worktree-modified, which is how git classifies a
// dirty or moved submodule.
func mergeSubmoduleChanges(changes []report.ChangedPath, detail map[string]report.SubmoduleStatus) []report.ChangedPath {
	for path := range detail {
		found := false
		for i := range changes {
			if changes[i].OldPath == path && changes[i].Flags&report.Unmerged == 0 {
				changes[i].Flags |= report.WorktreeModified
				found = true
				break
			}
		}
		if !found {
			changes = append(changes, report.ChangedPath{Flags: report.WorktreeModified, OldPath: path})
		}
	}

	return changes
}
