package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/linkhub/internal/services"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import branding, social links and links from a YAML file",
	Long: `Seed loads a YAML document with brand, social_links and links sections.
Rows that carry an id are upserted, so a seed file can be re-applied.

Example:
  linkhub seed --file seed.yaml`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "seed file path")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	f, err := os.Open(seedFile)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	file, err := services.ParseSeed(f)
	if err != nil {
		return err
	}

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	res, err := services.NewSeedService(a.admin(nil), a.links, a.socials, a.brand).Import(cmd.Context(), file)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d links, %d social links, brand: %t\n", res.Links, res.SocialLinks, res.Brand)
	return nil
}
