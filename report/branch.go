/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

import (
	"fmt"

	"github.com/fatih/color"
)

// BranchSection renders the "On branch ..." header and the tracking message
// against the upstream. A detached HEAD and a branch without an upstream end
// without a trailing blank line; every tracked case ends with one.
func BranchSection(info BranchInfo, mode ColorMode) string {
	if info.Name == "" {
		prefix := "HEAD detached at"
		if mode == Colorize {
			prefix = enabledColor(color.FgRed).Sprint(prefix)
		}

		return prefix + " " + info.DetachedShort + "\n"
	}

	msg := "On branch " + info.Name + "\n"
	if info.Upstream == "" {
		// git prints no tracking line and no blank line for a purely local branch.
		return msg
	}
	if info.UpstreamGone {
		msg += fmt.Sprintf("Your branch is based on '%s', but the upstream is gone.\n", info.Upstream)
		msg += "  (use \"git branch --unset-upstream\" to fixup)\n"

		return msg + "\n"
	}

	switch {
	case info.Ahead > 0 && info.Behind > 0:
		msg += fmt.Sprintf("Your branch and '%s' have diverged,\n", info.Upstream)
		msg += fmt.Sprintf("and have %d and %d different commits each, respectively.\n", info.Ahead, info.Behind)
		msg += "  (use \"git pull\" to merge the remote branch into yours)\n"
	case info.Ahead > 0:
		msg += fmt.Sprintf("Your branch is ahead of '%s' by %d commit%s.\n", info.Upstream, info.Ahead, plural(info.Ahead))
		msg += "  (use \"git push\" to publish your local commits)\n"
	case info.Behind > 0:
		msg += fmt.Sprintf("Your branch is behind '%s' by %d commit%s, and can be fast-forwarded.\n", info.Upstream, info.Behind, plural(info.Behind))
		msg += "  (use \"git pull\" to update your local branch)\n"
	default:
		msg += fmt.Sprintf("Your branch is up to date with '%s'.\n", info.Upstream)
	}

	return msg + "\n"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}

	return "s"
}
