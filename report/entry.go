/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

import (
	"strings"

	"github.com/fatih/color"
)

const entryIndent = "        "

// entryLabel picks the decorator for the flag subset the active section
// matched. Priority follows git: modified wins over renamed, renamed over
// deleted, deleted over new.
func entryLabel(flags StatusFlag) string {
	switch {
	case flags&(IndexModified|WorktreeModified) != 0:
		return "modified:   "
	case flags&(IndexRenamed|WorktreeRenamed) != 0:
		return "renamed:    "
	case flags&(IndexDeleted|WorktreeDeleted) != 0:
		return "deleted:    "
	case flags&IndexNew != 0:
		// WorktreeNew is intentionally absent: untracked paths get no decorator.
		return "new file:   "
	case flags&Unmerged != 0:
		return "both modified:   "
	}

	return ""
}

// formatEntry renders one changed path for the section whose mask produced
// flags. Color wraps the decorator and path only; the indent and the
// submodule parenthetical stay plain. The returned bool reports whether a
// parenthetical was attached, so the section can inject its submodule hint.
func formatEntry(rec ChangedPath, flags StatusFlag, c *color.Color, mode ColorMode, subs map[string]SubmoduleStatus) (string, bool) {
	text := entryLabel(flags) + rec.OldPath
	if flags&(IndexRenamed|WorktreeRenamed) != 0 {
		text += " -> " + rec.NewPath
	}
	if mode == Colorize {
		text = c.Sprint(text)
	}

	epilog := ""
	if flags&WorktreeModified != 0 {
		epilog = submoduleEpilog(subs[rec.OldPath])
	}

	return entryIndent + text + epilog + "\n", epilog != ""
}

// submoduleEpilog joins the raised submodule flags in fixed order. All-false
// yields an empty string, never empty parentheses.
func submoduleEpilog(st SubmoduleStatus) string {
	parts := make([]string, 0, 3)
	if st.NewCommits {
		parts = append(parts, "new commits")
	}
	if st.ModifiedContent {
		parts = append(parts, "modified content")
	}
	if st.UntrackedContent {
		parts = append(parts, "untracked content")
	}
	if len(parts) == 0 {
		return ""
	}

	return " (" + strings.Join(parts, ", ") + ")"
}
