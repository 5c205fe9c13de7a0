// Package cli implements the kinship command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/northhaven/kinship/pkg/buildinfo"
	"github.com/northhaven/kinship/pkg/config"
	"github.com/northhaven/kinship/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "kinship"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath and dataDir are bound to persistent flags; dataDir
	// overrides the config file's data_dir when set.
	configPath string
	dataDir    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Kinship serves a small genealogical dataset as a browsable site",
		Long:         `Kinship loads a static genealogical dataset (people and events) and presents person profiles, a pedigree diagram, and a chronological family timeline through a web UI, a terminal UI, and batch commands.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultPath, "path to the kinship.toml site configuration")
	root.PersistentFlags().StringVar(&c.dataDir, "data", "", "data directory holding people.json and events.json (overrides config)")

	// Register all subcommands
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.profileCommand())
	root.AddCommand(c.timelineCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Setup
// =============================================================================

// loadSite reads the configuration and builds the immutable store every
// command works from. The store always loads; per-source problems
// surface as warnings so batch commands behave like the site does and
// keep going with partial data.
func (c *CLI) loadSite() (config.Config, *store.Store, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if c.dataDir != "" {
		cfg.DataDir = c.dataDir
	}

	st := store.Load(cfg.PeoplePath(), cfg.EventsPath(), c.Logger)
	for _, n := range st.Notices {
		printWarning("%s", n.Message)
	}
	return cfg, st, nil
}
