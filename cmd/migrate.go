package cmd

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"glamar-shop/config"
)

const databaseURLFlag = "database-url"

func newMigrateCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		databaseURLFlag: &cobraflags.StringFlag{
			Name:  databaseURLFlag,
			Value: "",
			Usage: "Database URL (defaults to DATABASE_URL or the DB_* settings)",
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := flags[databaseURLFlag].GetString()
			if dsn == "" {
				dsn = config.AppConfig.DSN()
			}
			return config.RunMigrations(dsn)
		},
	}
	cobraflags.RegisterMap(migrateCmd, flags)
	return migrateCmd
}
