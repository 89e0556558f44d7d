package cmd

import (
	"fmt"

	"forum-provider/core/scripts"
	"forum-provider/core/storage"

	"github.com/spf13/cobra"
)

var publishKinds []string

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the script tree to object storage",
	Long: `Uploads the selected engine's scripts from scripts.dir into storage.bucket under
storage.prefix so later installs can use --source bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.close()

		var names []string
		for _, name := range publishKinds {
			k, err := scripts.ParseKind(name)
			if err != nil {
				return err
			}
			list, err := scripts.List(a.provider.Information, k)
			if err != nil {
				return err
			}
			names = append(names, list...)
		}

		client, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			return err
		}

		n, err := scripts.Publish(cmd.Context(), client, a.cfg.Storage.Bucket, a.cfg.Storage.Prefix, a.cfg.Scripts.Dir, names, a.log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published %d scripts to %s\n", n, a.cfg.Storage.Bucket)
		return nil
	},
}

func init() {
	publishCmd.Flags().StringSliceVar(&publishKinds, "kind", kindNames(scripts.Kinds()), "script kinds to publish")
	RootCmd.AddCommand(publishCmd)
}
