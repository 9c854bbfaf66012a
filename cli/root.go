// Package cli implements the sss command: a thin front-end that reads
// secrets and share tokens from files or stdin and hands them to the shamir
// engine.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/izouxv/goShamir/config"
	"github.com/izouxv/goShamir/shamir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// app carries the state shared by one command tree.
type app struct {
	v            *viper.Viper
	cfg          *config.Config
	configPath   string
	insecureDemo bool
	json         bool
	quiet        bool
	verbose      bool
}

// NewRootCmd creates the top-level cobra command with global flags.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:     "sss",
		Short:   "Split secrets into threshold shares and reconstruct them",
		Long:    "sss splits a secret into N share tokens so that any K of them reconstruct it (Shamir's secret sharing over a prime field).",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	d := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (or SSS_CONFIG env; default ~/.sss.yaml, ./.sss.yaml)")
	pf.String("profile", d.Profile, "field profile, see 'sss profiles' (or SSS_PROFILE env)")
	pf.BoolVar(&a.insecureDemo, "insecure-demo", false, "use the tiny demonstration field; offers NO confidentiality")
	pf.BoolVar(&a.json, "json", false, "output results as JSON")
	pf.BoolVar(&a.quiet, "quiet", false, "minimal output (errors only)")
	pf.BoolVar(&a.verbose, "verbose", false, "enable debug logging")
	_ = a.v.BindPFlag("profile", pf.Lookup("profile"))

	root.AddCommand(newSplitCmd(a))
	root.AddCommand(newReconstructCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newProfilesCmd(a))

	return root
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	if code := execute(NewRootCmd()); code != ExitSuccess {
		os.Exit(code)
	}
}

// execute runs cmd and returns its exit code. Errors the commands already
// logged are not printed again.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
	}
	return ExitCodeForError(err)
}

func (a *app) load() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	a.cfg = cfg
	return nil
}

func (a *app) printer(cmd *cobra.Command) *Printer {
	level := a.cfg.Level()
	if a.verbose {
		level = zerolog.DebugLevel
	}
	if a.quiet {
		level = zerolog.ErrorLevel
	}
	if a.insecureDemo && level > zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	return NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.json, a.quiet, level)
}

func (a *app) engine(p *Printer) (*shamir.Engine, error) {
	return shamir.New(a.cfg.FieldProfile(a.insecureDemo), shamir.WithLogger(p.Logger))
}

// readInput reads a whole file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
