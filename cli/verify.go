package cli

import (
	"fmt"

	"github.com/izouxv/goShamir/shamir"
	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify TOKEN...",
		Short: "Check that share tokens are well formed",
		Long: `Check the structure of share tokens: length, hex digits and ranges.

This cannot detect a corrupted or substituted share, because tokens carry no
integrity tag.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := a.printer(cmd)
			e, err := a.engine(printer)
			if err != nil {
				return err
			}

			type result struct {
				Token int  `json:"token"`
				Valid bool `json:"valid"`
				Index int  `json:"index,omitempty"`
			}
			results := make([]result, len(args))
			invalid := 0
			for i, tok := range args {
				results[i] = result{Token: i + 1}
				if info, err := e.Inspect(tok); err == nil {
					results[i].Valid = true
					results[i].Index = info.Index
				} else {
					invalid++
				}
			}

			if printer.Mode == OutputJSON {
				if err := printer.JSON(map[string]any{"profile": e.Profile().Name, "results": results}); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					if r.Valid {
						printer.Human("token %d: valid (index %d)", r.Token, r.Index)
					} else {
						printer.Human("token %d: invalid", r.Token)
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d tokens invalid for %s (expected %d hex digits)",
					shamir.ErrMalformedShare, invalid, len(args), e.Profile().Name, e.Profile().TokenLen())
			}
			return nil
		},
	}
}
