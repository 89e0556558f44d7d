package cmd

import (
	"fmt"
	"os"

	"forum-provider/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "forum-provider",
	Short: "Forum database provider",
	Long: `Forum database provider tooling: engine metadata, connection strings,
engine-specific maintenance functions and schema install/upgrade scripts.
Supports MySQL and Microsoft SQL Server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// debug preset for ISO8601 timestamps, console for humans
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
