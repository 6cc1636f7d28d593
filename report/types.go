/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

// Package report renders the long-form working-tree status report from a
// snapshot of repository state. It owns only formatting: all repository
// facts are computed up front by the collaborator and passed in as a
// Snapshot, so rendering is deterministic and side-effect free.
package report

// StatusFlag classifies one changed path. A record may carry several flags
// at once (e.g. a path modified in the index and again in the working tree),
// except Unmerged which never combines with the others.
type StatusFlag uint16

const (
	IndexNew StatusFlag = 1 << iota
	IndexModified
	IndexDeleted
	IndexRenamed
	WorktreeNew
	WorktreeModified
	WorktreeDeleted
	WorktreeRenamed
	Unmerged
)

const (
	// MaskUnmerged matches merge-conflict entries.
	MaskUnmerged = Unmerged
	// MaskTracked matches tracked files changed in the working tree but not staged.
	MaskTracked = WorktreeModified | WorktreeDeleted
	// MaskStaged matches changes recorded in the index.
	MaskStaged = IndexNew | IndexRenamed | IndexModified | IndexDeleted
	// MaskUntracked matches paths unknown to the index.
	MaskUntracked = WorktreeNew
)

// ChangedPath is one entry of the collaborator's changed-path list.
// NewPath is set only for renames.
type ChangedPath struct {
	Flags   StatusFlag
	OldPath string
	NewPath string
}

// BranchInfo describes HEAD and its upstream. Name is empty when HEAD is
// detached; DetachedShort then holds the abbreviated commit id.
type BranchInfo struct {
	Name          string
	DetachedShort string
	Upstream      string
	UpstreamGone  bool
	Ahead         int
	Behind        int
}

// RepoState reports an in-progress merge. HasConflicts is meaningful only
// while Merging is true.
type RepoState struct {
	Merging      bool
	HasConflicts bool
}

// SubmoduleStatus holds the modification flags of one submodule path.
type SubmoduleStatus struct {
	NewCommits       bool
	ModifiedContent  bool
	UntrackedContent bool
}

// Snapshot is one immutable view of repository state, consumed synchronously
// by Render and discarded. Submodules maps a changed path to its submodule
// detail; paths without an entry render without a parenthetical.
type Snapshot struct {
	Branch     BranchInfo
	State      RepoState
	Changes    []ChangedPath
	Submodules map[string]SubmoduleStatus
}

// ColorMode selects between plain text and ANSI-colored entries.
type ColorMode int

const (
	Plain ColorMode = iota
	Colorize
)
