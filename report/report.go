/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

import "strings"

// Render produces the complete status report for one snapshot: branch header,
// merge banner, the four file sections in fixed order, and the closing line.
func Render(snap Snapshot, mode ColorMode) string {
	var b strings.Builder
	b.WriteString(BranchSection(snap.Branch, mode))
	stateText, _ := RepoStateSection(snap.State, mode)
	b.WriteString(stateText)

	unmergedText, hadUnmerged := UnmergedSection().Build(snap, mode)
	b.WriteString(unmergedText)
	trackedText, hadTracked := TrackedSection().Build(snap, mode)
	b.WriteString(trackedText)
	stagedText, hadStaged := StagedSection(snap.State.Merging).Build(snap, mode)
	b.WriteString(stagedText)
	untrackedText, hadUntracked := UntrackedSection().Build(snap, mode)
	b.WriteString(untrackedText)

	// Conflicted paths count as unstaged work for the closing line, same as git.
	switch {
	case hadTracked || hadUnmerged:
		b.WriteString("no changes added to commit (use \"git add\" and/or \"git commit -a\")\n")
	case hadStaged:
		// staged-only changes need no nudge
	case hadUntracked:
		b.WriteString("nothing added to commit but untracked files present (use \"git add\" to track)\n")
	default:
		b.WriteString("nothing to commit, working tree clean\n")
	}

	return b.String()
}
