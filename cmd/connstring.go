package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var connstringCmd = &cobra.Command{
	Use:   "connstring [name=value...]",
	Short: "Build a native connection string",
	Long: `Builds the selected engine's connection string from name=value pairs, e.g.

  forum-provider connstring Server=db1 "User ID=forum" Database=yaf

Without arguments the configured connection string is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.close()

		if len(args) == 0 {
			dsn, err := a.provider.Information.ConnectionString()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dsn)
			return nil
		}

		params, err := parseAssignments(args)
		if err != nil {
			return err
		}
		dsn, err := a.provider.Information.BuildConnectionString(params)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dsn)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(connstringCmd)
}
