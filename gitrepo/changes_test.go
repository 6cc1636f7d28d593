package gitrepo

import (
	"testing"

	goGitPkg "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"github.com/untillpro/gitstatus/report"
)

func TestChangedPathsMapping(t *testing.T) {
	status := goGitPkg.Status{
		"untracked.txt": {Staging: goGitPkg.Untracked, Worktree: goGitPkg.Untracked},
		"modified.txt":  {Staging: goGitPkg.Unmodified, Worktree: goGitPkg.Modified},
		"deleted.txt":   {Staging: goGitPkg.Unmodified, Worktree: goGitPkg.Deleted},
		"staged.txt":    {Staging: goGitPkg.Modified, Worktree: goGitPkg.Unmodified},
		"both.txt":      {Staging: goGitPkg.Modified, Worktree: goGitPkg.Modified},
		"clean.txt":     {Staging: goGitPkg.Unmodified, Worktree: goGitPkg.Unmodified},
	}

	changes, err := (&Repo{}).changedPaths(status)
	require.NoError(t, err)
	require.Equal(t, []report.ChangedPath{
		{Flags: report.IndexModified | report.WorktreeModified, OldPath: "both.txt"},
		{Flags: report.WorktreeDeleted, OldPath: "deleted.txt"},
		{Flags: report.WorktreeModified, OldPath: "modified.txt"},
		{Flags: report.IndexModified, OldPath: "staged.txt"},
		{Flags: report.WorktreeNew, OldPath: "untracked.txt"},
	}, changes)
}

func TestChangedPathsUnmergedIsExclusive(t *testing.T) {
	status := goGitPkg.Status{
		"conflict.txt": {Staging: goGitPkg.UpdatedButUnmerged, Worktree: goGitPkg.UpdatedButUnmerged},
	}

	changes, err := (&Repo{}).changedPaths(status)
	require.NoError(t, err)
	require.Equal(t, []report.ChangedPath{{Flags: report.Unmerged, OldPath: "conflict.txt"}}, changes)
}

func TestChangedPathsRenamedWithExtra(t *testing.T) {
	status := goGitPkg.Status{
		"renamed.txt": {Staging: goGitPkg.Renamed, Worktree: goGitPkg.Unmodified, Extra: "file_3.txt"},
	}

	changes, err := (&Repo{}).changedPaths(status)
	require.NoError(t, err)
	require.Equal(t, []report.ChangedPath{
		{Flags: report.IndexRenamed, OldPath: "file_3.txt", NewPath: "renamed.txt"},
	}, changes)
}

func TestMergeSubmoduleChanges(t *testing.T) {
	detail := map[string]report.SubmoduleStatus{
		"sub_repo_1": {UntrackedContent: true},
		"sub_repo_2": {NewCommits: true},
	}
	changes := []report.ChangedPath{
		{Flags: report.WorktreeModified, OldPath: "sub_repo_1"},
	}

	merged := mergeSubmoduleChanges(changes, detail)
	sortChanges(merged)
	require.Equal(t, []report.ChangedPath{
		{Flags: report.WorktreeModified, OldPath: "sub_repo_1"},
		{Flags: report.WorktreeModified, OldPath: "sub_repo_2"},
	}, merged)
}

func TestMergeSubmoduleChangesSkipsUnmerged(t *testing.T) {
	detail := map[string]report.SubmoduleStatus{"sub_repo_1": {NewCommits: true}}
	changes := []report.ChangedPath{{Flags: report.Unmerged, OldPath: "sub_repo_1"}}

	merged := mergeSubmoduleChanges(changes, detail)
	require.ElementsMatch(t, []report.ChangedPath{
		{Flags: report.Unmerged, OldPath: "sub_repo_1"},
		{Flags: report.WorktreeModified, OldPath: "sub_repo_1"},
	}, merged)
}
