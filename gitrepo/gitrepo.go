/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

// Package gitrepo inspects a git repository and condenses everything the
// status report needs into one report.Snapshot. All queries are local,
// read-only and synchronous; the repository handle lives only for the
// duration of one snapshot.
package gitrepo

import (
	"sort"

	goGitPkg "github.com/go-git/go-git/v5"
	"github.com/pkg/errors"

	"github.com/untillpro/gitstatus/report"
)

// Repo wraps one open repository handle.
type Repo struct {
	repo *goGitPkg.Repository
}

// Open discovers the repository enclosing wd, walking up parent directories
// the way git itself does. Returns ErrNotARepository when there is none.
func Open(wd string) (*Repo, error) {
	repo, err := goGitPkg.PlainOpenWithOptions(wd, &goGitPkg.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, goGitPkg.ErrRepositoryNotExists) {
			return nil, ErrNotARepository
		}

		return nil, errors.Wrap(err, "failed to open repository")
	}

	return &Repo{repo: repo}, nil
}

// Snapshot runs every inspection query once and returns the combined result.
// No partial snapshot is ever returned: any query failure fails the whole
// call, submodule detail excepted (it degrades to an empty map entry).
func (r *Repo) Snapshot() (report.Snapshot, error) {
	w, err := r.repo.Worktree()
	if err != nil {
		return report.Snapshot{}, errors.Wrap(err, "worktree is not available")
	}
	status, err := w.Status()
	if err != nil {
		return report.Snapshot{}, errors.Wrap(err, "worktree status query failed")
	}

	changes, err := r.changedPaths(status)
	if err != nil {
		return report.Snapshot{}, err
	}
	submodules := r.submoduleDetail(w)
	changes = mergeSubmoduleChanges(changes, submodules)
	sortChanges(changes)

	branch, err := r.branchInfo()
	if err != nil {
		return report.Snapshot{}, err
	}

	return report.Snapshot{
		Branch:     branch,
		State:      r.repoState(changes),
		Changes:    changes,
		Submodules: submodules,
	}, nil
}

func sortChanges(changes []report.ChangedPath) {
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].OldPath < changes[j].OldPath
	})
}
