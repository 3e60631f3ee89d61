// internal/cli/check.go
package cli

import (
	"errors"
	"fmt"

	"go-range-marker/pkg/rings"
	"go-range-marker/pkg/utils"

	"github.com/spf13/cobra"
)

const checkTolerance = 1e-9

var errCheckFailed = errors.New("ring check failed")

func newCheckCmd() *cobra.Command {
	var (
		flags layoutFlags
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify ring sizes and layout distances",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.marker()
			if err != nil {
				return err
			}
			layouts := []rings.TileLayout{m.Layout}
			if all {
				layouts = rings.Layouts()
			}

			logger := loggerFromContext(cmd.Context())
			failures := 0
			for _, layout := range layouts {
				problems := checkLayout(layout, m.NodeSpacing, m.MaxRadius)
				for _, p := range problems {
					logger.Error(p, "layout", layout)
				}
				failures += len(problems)
				if len(problems) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rings ok\n", layout, m.MaxRadius)
				}
			}
			if failures > 0 {
				return fmt.Errorf("%w: %d problems", errCheckFailed, failures)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "check every layout")
	return cmd
}

// checkLayout returns one message per violated ring property.
func checkLayout(layout rings.TileLayout, spacing float64, radius int) []string {
	g, ok := rings.Lookup(layout)
	if !ok {
		return []string{fmt.Sprintf("no generator for %s", layout)}
	}
	var problems []string
	for i, ring := range rings.Generate(layout, spacing, radius) {
		if want := rings.CountFor(layout, i); len(ring) != want {
			problems = append(problems, fmt.Sprintf("ring %d has %d offsets, want %d", i, len(ring), want))
		}
		want := spacing * float64(i+1)
		for _, p := range ring {
			if d := g.Distance(p, spacing); !utils.NearlyEqual(d, want, checkTolerance) {
				problems = append(problems, fmt.Sprintf("ring %d offset (%.4f, %.4f) at distance %.4f, want %.4f", i, p.X(), p.Z(), d, want))
			}
		}
	}
	return problems
}
