package gitrepo

import "errors"

// ErrNotARepository mirrors the fatal line git prints when invoked outside
// of any work tree.
var ErrNotARepository = errors.New("fatal: not a git repository (or any of the parent directories): .git")
