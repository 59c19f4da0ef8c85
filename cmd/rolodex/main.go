package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/rolodex/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(app.Run)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "rolodex: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the rolodex command. runApp is replaced in tests.
func newRootCmd(runApp func(context.Context, app.Options) error) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "rolodex",
		Short: "Search a contact directory and keep favorites",
		Long: `rolodex searches a remote contact directory as you type and keeps a
local list of favorite contacts.

Configuration is read from ~/.config/rolodex/config.toml when present.
ROLODEX_ENDPOINT overrides the configured search endpoint; flags override both.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/rolodex/config.toml)")
	flags.StringVar(&opts.StartPath, "path", "/", "route to open: /, /favorite-contacts or /about")
	flags.StringVar(&opts.StorePath, "store", "", "key/value store location (default from config)")
	flags.StringVar(&opts.Backend, "backend", "", "store backend: file or sqlite (default from config)")
	flags.StringVar(&opts.Endpoint, "endpoint", "", "directory search URL (default from config)")
	flags.DurationVar(&opts.Debounce, "debounce", 0, "quiet period before searching (default from config, 600ms)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")

	return cmd
}
