package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"trivia-api/internal/bank"
	"trivia-api/internal/services"

	"github.com/spf13/cobra"
)

func (c *CLI) newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a question bank file into the database",
		Long: `Load a question bank (.yaml, .json or .csv) into the database.

Categories are matched by type and created when missing; every question in
the file is inserted. The whole file is loaded in one transaction.`,
		Example: "  trivia seed --file testdata/trivia.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSeed(cmd.Context(), file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "bank file to load (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (c *CLI) runSeed(ctx context.Context, file string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if file == "" {
		return errors.New("--file is required")
	}

	b, err := bank.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	db, err := c.openDatabase()
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	count, err := services.NewBankService(db).Import(ctx, b)
	if err != nil {
		return fmt.Errorf("seed %s: %w", file, err)
	}

	slog.Info("bank loaded", "file", file, "categories", len(b.Categories), "questions", count)
	fmt.Fprintf(c.rootCmd.OutOrStdout(), "Loaded %d questions in %d categories from %s\n", count, len(b.Categories), file)
	return nil
}
