package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"jacsonsite/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Inserts the default content into empty collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context(), appConfig.DatabaseURL)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()

		if err := seed.Run(cmd.Context(), st, newAuthService(st)); err != nil {
			return err
		}
		log.Println("Seed complete.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
