package cli

import (
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect TOKEN",
		Short: "Show the index and value carried by a share token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := a.printer(cmd)
			e, err := a.engine(printer)
			if err != nil {
				return err
			}

			info, err := e.Inspect(args[0])
			if err != nil {
				return printer.Fail(err, "invalid token")
			}

			if printer.Mode == OutputJSON {
				return printer.JSON(info)
			}
			printer.Human("Index:      %d", info.Index)
			printer.Human("Value:      %s", info.Value)
			printer.Human("Field:      %s (%d bits)", info.Profile, info.FieldBits)
			return nil
		},
	}
}
