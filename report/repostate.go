/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

// RepoStateSection renders the merge-in-progress banner. Its text depends
// only on the recorded merge state, never on the changed-path list. git does
// not colorize this banner, so mode is accepted for renderer uniformity only.
func RepoStateSection(state RepoState, mode ColorMode) (string, bool) {
	_ = mode
	if !state.Merging {
		return "", false
	}
	if state.HasConflicts {
		return "You have unmerged paths.\n" +
			"  (fix conflicts and run \"git commit\")\n" +
			"  (use \"git merge --abort\" to abort the merge)\n" +
			"\n", true
	}

	return "All conflicts fixed but you are still merging.\n" +
		"  (use \"git commit\" to conclude merge)\n" +
		"\n", true
}
