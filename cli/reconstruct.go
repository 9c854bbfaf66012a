package cli

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newReconstructCmd(a *app) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "reconstruct [FILE...]",
		Short: "Reconstruct a secret from K or more share tokens",
		Long: `Reconstruct a secret from share tokens read from the given files, or stdin.

Tokens are read one per line; blank lines and lines starting with '#' are
ignored. At least K tokens of the same split are needed. With fewer, the
result is silently wrong.

Example:
  sss reconstruct alice.share bob.share carol.share --out key.pem`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := a.printer(cmd)

			var tokens []string
			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, path := range args {
				data, err := readInput(cmd, path)
				if err != nil {
					return printer.Fail(err, fmt.Sprintf("failed to read %s", path))
				}
				tokens = append(tokens, readTokens(bytes.NewReader(data))...)
			}

			e, err := a.engine(printer)
			if err != nil {
				return err
			}
			secret, err := e.Reconstruct(tokens)
			if err != nil {
				return printer.Fail(err, "reconstruction failed")
			}

			if outFile != "" {
				if err := os.WriteFile(outFile, secret, 0o600); err != nil {
					return printer.Fail(err, "failed to write output file")
				}
			}

			if printer.Mode == OutputJSON {
				res := map[string]any{
					"profile":     e.Profile().Name,
					"shares_used": len(tokens),
					"secret_len":  len(secret),
				}
				if outFile != "" {
					res["output"] = outFile
				} else {
					res["secret"] = base64.StdEncoding.EncodeToString(secret)
				}
				return printer.JSON(res)
			}

			if outFile != "" {
				printer.Human("Secret reconstructed from %d shares: %s", len(tokens), outFile)
				return nil
			}
			_, err = printer.Writer.Write(secret)
			return err
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "write the secret to this file instead of stdout")

	return cmd
}

// readTokens splits r into one token per non-empty, non-comment line.
func readTokens(r io.Reader) []string {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, line)
	}
	return tokens
}
