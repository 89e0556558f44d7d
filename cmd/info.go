package cmd

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"forum-provider/core/scripts"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the selected provider's metadata",
	Long:  `Prints the provider name, dialect, connection parameters and every script list. Does not connect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Provider:  %s\n", a.provider.Name)
		fmt.Fprintf(out, "Dialect:   %s\n", a.provider.Dialect.Name())
		fmt.Fprintf(out, "Qualifier: %q\n", a.provider.Dialect.Naming().Qualifier())
		fmt.Fprintf(out, "Functions: %t\n\n", a.provider.HasFunctions())

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ORDINAL\tPARAMETER\tDEFAULT")
		params := a.provider.Information.ConnectionParameters()
		sort.Slice(params, func(i, j int) bool { return params[i].Ordinal() < params[j].Ordinal() })
		for _, p := range params {
			fmt.Fprintf(w, "%d\t%s\t%s\n", p.Ordinal(), p.Name(), p.DefaultValue())
		}
		if err := w.Flush(); err != nil {
			return err
		}

		for _, k := range scripts.Kinds() {
			list, err := scripts.List(a.provider.Information, k)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s:\n  %s\n", k, strings.Join(list, "\n  "))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
