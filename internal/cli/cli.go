// Package cli provides the trivia command line: the API server and bank
// maintenance commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logging"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type CLI struct {
	rootCmd *cobra.Command
	cfg     *config.Config

	configPath string
}

func New() *CLI {
	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

// Execute runs the command line and returns the process exit code.
func (c *CLI) Execute() int {
	if err := c.rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "trivia: %v\n", err)
		return 1
	}
	return 0
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trivia",
		Short: "Trivia question bank API",
		Long: `Trivia serves a question bank over HTTP: categories, paginated
question listings, search, and random quiz questions.

Run without a subcommand to start the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./config.yaml)")

	cmd.AddCommand(c.newServeCmd())
	cmd.AddCommand(c.newSeedCmd())
	cmd.AddCommand(c.newVersionCmd())

	return cmd
}

func (c *CLI) initConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := logging.New(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// openDatabase connects and creates any missing tables.
func (c *CLI) openDatabase() (*gorm.DB, error) {
	db, err := database.Connect(c.cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
