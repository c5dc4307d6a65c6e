package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fake-recruiter-detector/backend/internal/scoring"
	"fake-recruiter-detector/backend/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type sourceFlags struct {
	from string
	db   string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "pattern file (.json, .yaml, .yml) instead of the built-in table")
	cmd.Flags().StringVar(&f.db, "db", "", "SQLite pattern store to read from")
}

// table resolves the pattern source: store, then file, then built-in.
func (f *sourceFlags) table() (*scoring.PatternTable, error) {
	if path := strings.TrimSpace(f.db); path != "" {
		db, err := store.Open(path, true)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.LoadTable()
	}
	if path := strings.TrimSpace(f.from); path != "" {
		return scoring.LoadTable(path)
	}
	return scoring.DefaultTable(), nil
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "patterns",
		Short:         "Manage recruiter scam phrase tables",
		Long:          `Export, seed and try out the phrase tables the fake-recruiter-detector backend scores messages against.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newExportCmd(), newSeedCmd(), newCheckCmd())
	return root
}

func newExportCmd() *cobra.Command {
	var (
		src    sourceFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the phrase table to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := scoring.ParseFormat(format)
			if err != nil {
				return err
			}
			table, err := src.table()
			if err != nil {
				return err
			}
			return scoring.WritePatterns(cmd.OutOrStdout(), f, table.Patterns())
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var (
		dbPath string
		from   string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the SQLite pattern store with the built-in or a file table",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := sourceFlags{from: from}
			table, err := src.table()
			if err != nil {
				return err
			}

			db, err := store.Open(dbPath, true)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := db.Close(); cerr != nil {
					logrus.WithError(cerr).Warn("close pattern store")
				}
			}()

			if err := db.ReplacePatterns(table.Patterns()); err != nil {
				return fmt.Errorf("seed patterns: %w", err)
			}
			logrus.WithFields(logrus.Fields{
				"db":       dbPath,
				"patterns": table.Len(),
			}).Debug("pattern store seeded")
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d patterns into %s\n", table.Len(), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite pattern store to write")
	cmd.Flags().StringVar(&from, "from", "", "pattern file (.json, .yaml, .yml) instead of the built-in table")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "check TEXT...",
		Short: "Score a message and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := src.table()
			if err != nil {
				return err
			}
			result := scoring.NewAnalyzer(table).Analyze(strings.Join(args, " "))
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	src.register(cmd)
	return cmd
}
