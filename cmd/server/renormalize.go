package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/linkhub/internal/ordering"
)

var renormalizeDryRun bool

var renormalizeCmd = &cobra.Command{
	Use:   "renormalize",
	Short: "Rewrite link and social link positions to 1..N",
	Long: `Renormalize closes gaps and resolves duplicate positions left behind by
deletes and edits. Every category is rewritten to 1..N keeping the current
order. With --dry-run the rows that would change are printed instead.`,
	RunE: runRenormalize,
}

func init() {
	renormalizeCmd.Flags().BoolVar(&renormalizeDryRun, "dry-run", false, "print the changes without writing them")
}

func runRenormalize(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	admin := a.admin(nil)
	out := cmd.OutOrStdout()

	if renormalizeDryRun {
		preview, err := admin.RenormalizePlan(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range preview.Links {
			fmt.Fprintf(out, "link %s: %s #%d -> %s #%d\n", p.ID, p.FromCategory, p.FromPosition, p.Category, p.Position)
		}
		for _, p := range preview.Socials {
			fmt.Fprintf(out, "social %s: #%d -> #%d\n", p.ID, p.FromPosition, p.Position)
		}
		for _, c := range preview.Layout {
			fmt.Fprintf(out, "category %s: %d links, positions 1..%d\n", c.Name, len(c.Items), lastPosition(c.Items))
		}
		fmt.Fprintf(out, "%d link and %d social link rows would change\n", len(preview.Links), len(preview.Socials))
		return nil
	}

	links, err := admin.RenormalizeLinks(cmd.Context())
	if err != nil {
		return err
	}
	socials, err := admin.RenormalizeSocials(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "renormalized %d links and %d social links\n", len(links), len(socials))
	return nil
}

func lastPosition(items []ordering.Item) int {
	if len(items) == 0 {
		return 0
	}
	return items[len(items)-1].Position
}
