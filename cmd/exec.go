package cmd

import (
	"encoding/json"

	"forum-provider/core/functions"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var execType string

var execCmd = &cobra.Command{
	Use:   "exec <operation> [name=value...]",
	Short: "Run an engine-specific function",
	Long: `Runs one of the engine's maintenance functions in its own transaction and prints
the result and engine messages as JSON. MySQL supports DBSize, ReIndex, RunSQL and
FullTextSupported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fnType, err := functions.ParseFunctionType(execType)
		if err != nil {
			return err
		}
		assignments, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}

		a, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer a.close()

		exec, err := a.executor()
		if err != nil {
			return err
		}

		params := functions.Params{}
		for _, p := range assignments {
			params[p.Name] = p.Value
		}

		ok, result, err := exec.Execute(cmd.Context(), fnType, args[0], params, nil)
		if err != nil {
			return err
		}
		if !ok {
			a.log.Warn("Operation did not run", zap.String("operation", args[0]))
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"ran":      ok,
			"result":   result,
			"messages": exec.Messages(),
		})
	},
}

func init() {
	execCmd.Flags().StringVarP(&execType, "type", "t", functions.Scalar.String(), "function type (scalar, query, datatable, reader)")
	RootCmd.AddCommand(execCmd)
}
