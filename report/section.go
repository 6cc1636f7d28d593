/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

import (
	"strings"

	"github.com/fatih/color"
)

// Section filters the changed-path list with a flag mask and renders the
// matching entries under a lazy header: a section with zero matches emits
// nothing at all, a section with matches ends with exactly one blank line.
type Section struct {
	Title         string
	Hints         []string
	SubmoduleHint string
	Mask          StatusFlag

	color *color.Color
}

// Build renders the section against one snapshot. Entries keep the
// collaborator-supplied order. Returns the text and whether any entry matched.
func (s Section) Build(snap Snapshot, mode ColorMode) (string, bool) {
	entries := make([]string, 0, len(snap.Changes))
	needSubmoduleHint := false
	for _, rec := range snap.Changes {
		flags := rec.Flags & s.Mask
		if flags == 0 {
			continue
		}
		line, submodule := formatEntry(rec, flags, s.color, mode, snap.Submodules)
		entries = append(entries, line)
		needSubmoduleHint = needSubmoduleHint || submodule
	}
	if len(entries) == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString(s.Title + "\n")
	for _, hint := range s.Hints {
		b.WriteString(hint + "\n")
	}
	if needSubmoduleHint && s.SubmoduleHint != "" {
		b.WriteString(s.SubmoduleHint + "\n")
	}
	for _, line := range entries {
		b.WriteString(line)
	}
	b.WriteString("\n")

	return b.String(), true
}

func enabledColor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()

	return c
}

// UnmergedSection lists merge-conflict paths.
func UnmergedSection() Section {
	return Section{
		Title: "Unmerged paths:",
		Hints: []string{`  (use "git add <file>..." to mark resolution)`},
		Mask:  MaskUnmerged,
		color: enabledColor(color.FgRed),
	}
}

// TrackedSection lists tracked files changed in the working tree but not
// staged yet.
func TrackedSection() Section {
	return Section{
		Title: "Changes not staged for commit:",
		Hints: []string{
			`  (use "git add <file>..." to update what will be committed)`,
			`  (use "git restore <file>..." to discard changes in working directory)`,
		},
		SubmoduleHint: "  (commit or discard the untracked or modified content in submodules)",
		Mask:          MaskTracked,
		color:         enabledColor(color.FgRed),
	}
}

// StagedSection lists index changes. While a merge is being concluded git
// drops the unstage hint from the header, and so do we.
func StagedSection(merging bool) Section {
	s := Section{
		Title: "Changes to be committed:",
		Hints: []string{`  (use "git restore --staged <file>..." to unstage)`},
		Mask:  MaskStaged,
		color: enabledColor(color.FgGreen),
	}
	if merging {
		s.Hints = nil
	}

	return s
}

// UntrackedSection lists paths unknown to the index.
func UntrackedSection() Section {
	return Section{
		Title: "Untracked files:",
		Hints: []string{`  (use "git add <file>..." to include in what will be committed)`},
		Mask:  MaskUntracked,
		color: enabledColor(color.FgRed),
	}
}
