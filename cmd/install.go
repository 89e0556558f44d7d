package cmd

import (
	"errors"
	"fmt"
	"time"

	"forum-provider/core/functions"
	"forum-provider/core/scripts"
	"forum-provider/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fullTextProbe is the engine function reporting full-text support.
const fullTextProbe = "FullTextSupported"

type installFlags struct {
	upgrade   bool
	providers bool
	azure     bool
	fulltext  bool
	source    string
}

var installOpts installFlags

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install or upgrade the forum schema",
	Long: `Applies the engine's script lists in order: install (or upgrade with --upgrade),
then the optional provider, azure and full-text scripts. {objectQualifier} and
{databaseOwner} are replaced with database.qualifier and database.owner.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer a.close()

		installed, err := scripts.Installed(a.db, a.provider.Dialect.Naming())
		if err != nil {
			return err
		}
		if installed && !installOpts.upgrade {
			return errors.New("forum schema already installed, use --upgrade")
		}
		if !installed && installOpts.upgrade {
			return errors.New("forum schema not installed, run install without --upgrade")
		}

		exec, err := a.executor()
		if err != nil {
			return err
		}
		src, err := a.scriptSource(installOpts.source)
		if err != nil {
			return err
		}

		var paths []string
		for _, k := range kindsFor(installOpts) {
			if k == scripts.FullText && !fullTextSupported(cmd, exec, a.log) {
				a.log.Warn("Full-text search not supported by this server, skipping")
				continue
			}
			list, err := scripts.List(a.provider.Information, k)
			if err != nil {
				return err
			}
			paths = append(paths, list...)
		}

		runner := scripts.NewRunner(src, exec, a.cfg.Database.Qualifier, a.cfg.Database.Owner, a.log)
		reports, err := runner.Run(cmd.Context(), paths)
		for _, r := range reports {
			fmt.Fprintf(cmd.OutOrStdout(), "%-50s %3d batches  %s\n", r.Path, r.Batches, r.Elapsed.Round(time.Millisecond))
			for _, m := range r.Messages {
				fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", m)
			}
		}
		return err
	},
}

func kindsFor(f installFlags) []scripts.Kind {
	kinds := []scripts.Kind{scripts.Install}
	if f.upgrade {
		kinds[0] = scripts.Upgrade
	}
	if f.providers {
		kinds = append(kinds, scripts.Providers)
	}
	if f.azure {
		kinds = append(kinds, scripts.Azure)
	}
	if f.fulltext {
		kinds = append(kinds, scripts.FullText)
	}
	return kinds
}

func kindNames(kinds []scripts.Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

func fullTextSupported(cmd *cobra.Command, exec *functions.Executor, log *zap.Logger) bool {
	ok, result, err := exec.Execute(cmd.Context(), functions.Scalar, fullTextProbe, nil, nil)
	if err != nil {
		log.Warn("Full-text probe failed", zap.Error(err))
		return false
	}
	return ok && utils.ToBool(result)
}

func init() {
	installCmd.Flags().BoolVar(&installOpts.upgrade, "upgrade", false, "run the upgrade scripts instead of install")
	installCmd.Flags().BoolVar(&installOpts.providers, "providers", false, "also install the membership/role/profile provider objects")
	installCmd.Flags().BoolVar(&installOpts.azure, "azure", false, "also run the hosted-variant scripts")
	installCmd.Flags().BoolVar(&installOpts.fulltext, "fulltext", false, "also enable full-text search when supported")
	installCmd.Flags().StringVar(&installOpts.source, "source", "", "script source (dir, bucket); defaults to scripts.source")
	RootCmd.AddCommand(installCmd)
}
