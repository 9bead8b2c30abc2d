package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/terragen/internal/pipeline"
	"github.com/MeKo-Tech/terragen/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate <pipeline.json>",
	Short: "Generate a map from a pipeline file",
	Long: `Generate runs a generation pipeline and stores the resulting map with
all its attributes in the SQLite database.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Bool("dry-run", false, "Validate the pipeline without storing the result")

	if err := viper.BindPFlag("generate.dry_run", generateCmd.Flags().Lookup("dry-run")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	dryRun := viper.GetBool("generate.dry_run")
	database := viper.GetString("database")

	p, err := pipeline.Load(args[0], logger)
	if err != nil {
		return err
	}
	logger.Info("Loaded pipeline", "name", p.Name(), "steps", p.StepCount())

	m, err := p.Run()
	if err != nil {
		return err
	}
	logger.Info("Generated map", "name", m.Name(), "size", m.Size().String(), "attributes", m.AttributeCount())

	if dryRun {
		return nil
	}

	s, err := store.Open(database)
	if err != nil {
		return err
	}
	defer s.Close() // nolint:errcheck

	if err := s.SaveMap(m); err != nil {
		return err
	}
	logger.Info("Stored map", "name", m.Name(), "database", database)

	return nil
}
