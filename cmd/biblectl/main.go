// Command biblectl queries the verse store and lexicon from the terminal.
// It reads the same configuration as the server and talks to the store
// directly, so it works without a running API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warrenjonahb/bible-study-app/internal/app"
	"github.com/warrenjonahb/bible-study-app/internal/config"
	"github.com/warrenjonahb/bible-study-app/internal/domain"
	"github.com/warrenjonahb/bible-study-app/internal/lexicon"
	"github.com/warrenjonahb/bible-study-app/internal/service/bible"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds flag values and the service opened by PersistentPreRunE.
type cli struct {
	configPath string
	jsonOut    bool

	svc        *bible.Service
	closeStore func()
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "biblectl",
		Short: "Query Strong's-annotated Bible text",
		Long: `biblectl reads the configured verse store and Strong's lexicons and
prints books, chapters, annotated verses and lexicon entries.

Books may be given by number (43), name (John) or OSIS abbreviation (1Cor).`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
		PersistentPostRun: func(*cobra.Command, []string) { c.close() },
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "print JSON instead of text")

	root.AddCommand(
		newVersionCmd(),
		newBooksCmd(c),
		newChaptersCmd(c),
		newVersesCmd(c),
		newLookupCmd(c),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "biblectl", app.BuildVersion())
		},
	}
}

// open loads config, lexicon and verse store for every command but version.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	path := c.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	lex, err := lexicon.Load(cfg.Lexicon.GreekPath, cfg.Lexicon.HebrewPath)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}

	store, closeStore, err := app.OpenStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("open verse store: %w", err)
	}

	c.svc = bible.NewService(logger, store, lex, domain.Canon{})
	c.closeStore = closeStore
	return nil
}

func (c *cli) close() {
	if c.closeStore != nil {
		c.closeStore()
	}
}
