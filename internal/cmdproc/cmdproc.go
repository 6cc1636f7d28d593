package cmdproc

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/untillpro/gitstatus/internal/commands"
)

type globalParams struct {
	Dir string
}

// ExecRootCmd executes the root command with the given arguments.
// Returns:
// - context.Context: The context of the executed command
// - error: Any error that occurred during execution.
func ExecRootCmd(ctx context.Context, args []string) (context.Context, error) {
	params := &globalParams{}
	rootCmd := PrepareRootCmd(ctx, utilityName, utilityDesc, args, version, params)

	return ExecCommandAndCatchInterrupt(rootCmd)
}

// PrepareRootCmd builds the root command: running it without a subcommand
// renders the status report for the working directory.
func PrepareRootCmd(ctx context.Context, use string, short string, args []string, version string, params *globalParams) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   use,
		Short: short,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if ok, _ := cmd.Flags().GetBool("trace"); ok {
				logger.SetLogLevel(logger.LogLevelTrace)
				logger.Verbose("Using logger.LogLevelTrace...")
			} else if ok, _ := cmd.Flags().GetBool("verbose"); ok {
				logger.SetLogLevel(logger.LogLevelVerbose)
				logger.Verbose("Using logger.LogLevelVerbose...")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := getWorkingDir(params)
			if err != nil {
				return err
			}
			colorWhen, _ := cmd.Flags().GetString(colorWord)
			copyReport, _ := cmd.Flags().GetBool(copyWord)

			return commands.Status(wd, colorWhen, copyReport)
		},
	}

	var versionCmd = &cobra.Command{
		Use:     "version",
		Short:   "Print current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.SetContext(ctx)
	rootCmd.SetArgs(args[1:])
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringVarP(&params.Dir, changeDirWord, changeDirParam, "", changeDirDesc)
	rootCmd.Flags().String(colorWord, commands.ColorAuto, colorDesc)
	rootCmd.Flags().BoolP(copyWord, copyParam, false, copyDesc)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("trace", false, "Extremely verbose output")
	rootCmd.SilenceUsage = true

	return rootCmd
}

func getWorkingDir(params *globalParams) (string, error) {
	if params.Dir != "" {
		return params.Dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return wd, nil
}

// ExecCommandAndCatchInterrupt executes the given command and catches interrupts.
// Returns:
// - context.Context: The context of the executed command
// - error: Any error that occurred during execution.
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) (context.Context, error) {
	cmdExec := func(ctx context.Context) (*cobra.Command, error) {
		return cmd.ExecuteContextC(ctx)
	}

	return goAndCatchInterrupt(cmd, cmdExec)
}

// goAndCatchInterrupt runs the given function in a separate goroutine and catches interrupts.
// Returns:
// - context.Context: The context of the executed command
// - error: Any error that occurred during execution.
func goAndCatchInterrupt(cmd *cobra.Command, f func(ctx context.Context) (*cobra.Command, error)) (context.Context, error) {
	var cmdExecuted *cobra.Command

	var signals = make(chan os.Signal, 1)

	ctxWithCancel, cancel := context.WithCancel(cmd.Context())
	signal.Notify(signals, os.Interrupt)

	var err error
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()

		cmdExecuted, err = f(ctxWithCancel)
		cancel()
	}()

	select {
	case sig := <-signals:
		logger.Info("signal received:", sig)
		cancel()
	case <-ctxWithCancel.Done():
	}
	logger.Verbose("waiting for function to finish...")
	wg.Wait()

	return cmdExecuted.Context(), err
}
