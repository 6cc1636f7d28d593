/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/untillpro/goutils/logger"

	"github.com/untillpro/gitstatus/gitrepo"
	"github.com/untillpro/gitstatus/report"
)

// Status renders the working-tree status report for wd and prints it to
// stdout. With copyReport the plain (uncolored) text is also placed on the
// system clipboard; a clipboard failure does not fail the command.
func Status(wd string, colorWhen string, copyReport bool) error {
	mode, err := colorMode(colorWhen)
	if err != nil {
		return err
	}

	repo, err := gitrepo.Open(wd)
	if err != nil {
		return err
	}
	snap, err := repo.Snapshot()
	if err != nil {
		return err
	}
	logger.Verbose(fmt.Sprintf("snapshot: %d changed paths", len(snap.Changes)))

	text := report.Render(snap, mode)
	fmt.Print(text)

	if copyReport {
		if mode == report.Colorize {
			text = report.Render(snap, report.Plain)
		}
		if err := clipboard.WriteAll(text); err != nil {
			logger.Error(fmt.Sprintf("clipboard write failed: %v", err))
		}
	}

	return nil
}

func colorMode(when string) (report.ColorMode, error) {
	switch when {
	case ColorAlways:
		return report.Colorize, nil
	case ColorNever:
		return report.Plain, nil
	case ColorAuto:
		// fatih/color flips NoColor on when stdout is not a terminal
		if color.NoColor {
			return report.Plain, nil
		}

		return report.Colorize, nil
	}

	return report.Plain, fmt.Errorf("%w: %s", ErrBadColorWhen, when)
}
