package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"forum-provider/core/scripts"
	"forum-provider/core/storage"
	"forum-provider/feature/schema"

	"github.com/spf13/cobra"
)

var verifyBucket bool

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the installed schema and, optionally, the published scripts",
	Long: `Compares the core forum tables with the expected columns and types. With --bucket
it also reports every script of the engine missing from storage.bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer a.close()

		report, err := schema.Check(a.db, a.provider.Dialect.Naming())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}

		var missing []string
		if verifyBucket {
			client, err := storage.NewClient(a.cfg.Storage)
			if err != nil {
				return err
			}
			var names []string
			for _, k := range scripts.Kinds() {
				list, err := scripts.List(a.provider.Information, k)
				if err != nil {
					return err
				}
				names = append(names, list...)
			}
			missing, err = scripts.MissingInBucket(cmd.Context(), client, a.cfg.Storage.Bucket, a.cfg.Storage.Prefix, names)
			if err != nil {
				return err
			}
			for _, m := range missing {
				fmt.Fprintf(cmd.OutOrStdout(), "missing in bucket: %s\n", m)
			}
		}

		if !report.Matched || len(missing) > 0 {
			return errors.New("verification failed")
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyBucket, "bucket", false, "also check that every script is published")
	RootCmd.AddCommand(verifyCmd)
}
