package cmdproc

const (
	utilityName = "gitstatus"
	utilityDesc = "Show the working tree status"
	version     = "0.1.0"

	colorWord      = "color"
	colorDesc      = "when to colorize the report: always, auto or never"
	copyWord       = "copy"
	copyParam      = "y"
	copyDesc       = "also copy the plain report to the clipboard"
	changeDirWord  = "change-dir"
	changeDirParam = "C"
	changeDirDesc  = "change to dir before rendering the report"
)
