package cli

import (
	"github.com/izouxv/goShamir/field"
	"github.com/spf13/cobra"
)

func newProfilesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the available field profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := a.printer(cmd)

			type row struct {
				Name         string `json:"name"`
				Bits         int    `json:"bits"`
				TokenLen     int    `json:"token_len"`
				MaxSecretLen int    `json:"max_secret_len"`
				Default      bool   `json:"default,omitempty"`
			}
			var rows []row
			for _, name := range field.ProfileNames() {
				p := field.ProfileGet(name)
				rows = append(rows, row{
					Name:         p.Name,
					Bits:         p.BitLen,
					TokenLen:     p.TokenLen(),
					MaxSecretLen: p.MaxSecretLen(),
					Default:      p.Name == field.DefaultProfile,
				})
			}

			if printer.Mode == OutputJSON {
				return printer.JSON(rows)
			}
			printer.Human("%-10s %5s %6s %7s", "NAME", "BITS", "TOKEN", "SECRET")
			for _, r := range rows {
				mark := ""
				if r.Default {
					mark = " (default)"
				}
				printer.Human("%-10s %5d %6d %7d%s", r.Name, r.Bits, r.TokenLen, r.MaxSecretLen, mark)
			}
			return nil
		},
	}
}
