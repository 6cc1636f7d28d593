package commands

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)
