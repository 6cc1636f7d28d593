package main

import (
	"context"
	"fmt"
	"os"

	"github.com/untillpro/gitstatus/internal/cmdproc"
)

func main() {
	if _, err := cmdproc.ExecRootCmd(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
