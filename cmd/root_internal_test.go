package cmd

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/spf13/cobra"

	"glamar-shop/config"
)

// captureServe records the configuration the serve path would have used.
func captureServe(got **config.Config, calls *int) serveFunc {
	return func(cmd *cobra.Command, cfg *config.Config) error {
		*calls++
		*got = cfg
		return nil
	}
}

func TestServeFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantPort    string
		wantMigrate bool
	}{
		{name: "default command without flags", args: []string{}, wantPort: "5000", wantMigrate: true},
		{name: "default command with port", args: []string{"--port", "9999"}, wantPort: "9999", wantMigrate: true},
		{name: "default command disables migrations", args: []string{"--port", "9001", "--auto-migrate", "false"}, wantPort: "9001", wantMigrate: false},
		{name: "serve subcommand with port", args: []string{"serve", "--port", "7777"}, wantPort: "7777", wantMigrate: true},
		{name: "serve subcommand disables migrations", args: []string{"serve", "--auto-migrate", "false"}, wantPort: "5000", wantMigrate: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"APP_PORT", "PORT", "DB_AUTO_MIGRATE"} {
				t.Setenv(key, "")
			}
			c := qt.New(t)

			var got *config.Config
			var calls int
			root := newRootCommand(captureServe(&got, &calls))
			root.SetArgs(tt.args)

			c.Assert(root.Execute(), qt.IsNil)
			c.Assert(calls, qt.Equals, 1)
			c.Assert(got.Port, qt.Equals, tt.wantPort)
			c.Assert(got.DBAutoMigrate, qt.Equals, tt.wantMigrate)
		})
	}
}

func TestServeFlagsRejectBadAutoMigrate(t *testing.T) {
	c := qt.New(t)

	var got *config.Config
	var calls int
	root := newRootCommand(captureServe(&got, &calls))
	root.SetArgs([]string{"--auto-migrate", "maybe"})

	c.Assert(root.Execute(), qt.ErrorMatches, `invalid --auto-migrate value "maybe": want true or false`)
	c.Assert(calls, qt.Equals, 0)
}

func TestRootCommandTree(t *testing.T) {
	c := qt.New(t)

	root := NewRootCommand()
	names := []string{}
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	c.Assert(names, qt.Contains, "serve")
	c.Assert(names, qt.Contains, "migrate")
	c.Assert(root.Flags().Lookup(portFlag), qt.IsNotNil)
	c.Assert(root.Flags().Lookup(autoMigrateFlag), qt.IsNotNil)
}
