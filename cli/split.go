package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/izouxv/goShamir/config"
	"github.com/spf13/cobra"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		inFile  string
		outFile string
		trim    bool
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into N share tokens (K-of-N threshold)",
		Long: `Split a secret into N share tokens, one per line.

Any K tokens reconstruct the secret. Fewer than K tokens reconstruct to an
unrelated value without any error, so keep track of K yourself: it is not
recorded in the tokens.

Example:
  sss split --in key.pem --shares 5 --threshold 3 --out key.shares`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.ValidatePolicy(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
			}
			printer := a.printer(cmd)

			secret, err := readInput(cmd, inFile)
			if err != nil {
				return printer.Fail(err, "failed to read secret")
			}
			if trim {
				secret = bytes.TrimRight(secret, "\r\n")
			}

			e, err := a.engine(printer)
			if err != nil {
				return err
			}
			tokens, err := e.Split(secret, a.cfg.Shares, a.cfg.Threshold)
			if err != nil {
				return printer.Fail(err, "split failed")
			}

			if outFile != "" {
				data := strings.Join(tokens, "\n") + "\n"
				if err := os.WriteFile(outFile, []byte(data), 0o600); err != nil {
					return printer.Fail(err, "failed to write shares")
				}
			}

			if printer.Mode == OutputJSON {
				res := map[string]any{
					"profile":   e.Profile().Name,
					"threshold": a.cfg.Threshold,
					"total":     a.cfg.Shares,
				}
				if outFile != "" {
					res["output"] = outFile
				} else {
					res["shares"] = tokens
				}
				return printer.JSON(res)
			}

			if outFile != "" {
				printer.Human("Split secret into %d shares (threshold %d): %s", a.cfg.Shares, a.cfg.Threshold, outFile)
				return nil
			}
			for _, t := range tokens {
				fmt.Fprintln(printer.Writer, t)
			}
			return nil
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.StringVar(&inFile, "in", "-", "file holding the secret ('-' for stdin)")
	f.StringVar(&outFile, "out", "", "write tokens to this file instead of stdout")
	f.BoolVar(&trim, "trim-newline", false, "strip trailing newlines from the secret")
	f.Int("shares", d.Shares, "total number of shares (N)")
	f.Int("threshold", d.Threshold, "minimum shares to reconstruct (K)")
	_ = a.v.BindPFlag("shares", f.Lookup("shares"))
	_ = a.v.BindPFlag("threshold", f.Lookup("threshold"))

	return cmd
}
