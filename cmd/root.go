package cmd

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"glamar-shop/config"
)

func NewRootCommand() *cobra.Command {
	return newRootCommand(serve)
}

// newRootCommand builds the command tree. serve is also the default command,
// so the root carries its own copy of the serve flags.
func newRootCommand(run serveFunc) *cobra.Command {
	flags := newServeFlags()
	rootCmd := &cobra.Command{
		Use:   "glamar-shop",
		Short: "Glamar shop API: accounts, catalog, cart and contact form",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			config.SetupLogger(cfg)
		},
		RunE:          serveRunE(flags, run),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cobraflags.RegisterMap(rootCmd, flags)

	rootCmd.AddCommand(newServeCommand(run))
	rootCmd.AddCommand(newMigrateCommand())
	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}
