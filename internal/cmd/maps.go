package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/terragen/internal/store"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List the stored maps",
	RunE:  runMaps,
}

func init() {
	rootCmd.AddCommand(mapsCmd)
}

func runMaps(cmd *cobra.Command, args []string) error {
	s, err := store.Open(viper.GetString("database"))
	if err != nil {
		return err
	}
	defer s.Close() // nolint:errcheck

	names, err := s.ListMaps()
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
