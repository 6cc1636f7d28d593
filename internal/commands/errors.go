package commands

import "errors"

var ErrBadColorWhen = errors.New("invalid --color value, expected always, auto or never")
