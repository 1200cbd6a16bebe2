package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clarete/parsekit"
	"github.com/clarete/parsekit/ascii"
	"github.com/clarete/parsekit/examples/calc"
)

// errReported is returned once a parse error has already been
// written out, so main only has to set the exit status
var errReported = errors.New("parse error reported")

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PCALC")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "pcalc [expression]",
		Short: "Integer calculator built with parsekit",
		Long: "pcalc evaluates an arithmetic expression given as argument, read from a file or " +
			"from the standard input.  It can also print the parse tree built for it.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, args, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("file", "f", "", "Read the expression from a file")
	flags.BoolP("tree", "t", false, "Print the parse tree instead of the result")
	flags.Bool("clean", false, "Remove empty nodes from the parse tree")
	flags.Bool("partial", false, "Accept input left after the expression")
	flags.BoolP("verbose", "v", false, "Show the expected parser and the backtrace of errors")
	flags.Bool("color", false, "Paint trees and errors with terminal colors")
	flags.String("trace", "", "Log the outcome of grammar rules at the given level (debug, info)")
	flags.Bool("show-config", false, "Print the settings and exit")

	_ = v.BindPFlag("file", flags.Lookup("file"))
	_ = v.BindPFlag("tree", flags.Lookup("tree"))
	_ = v.BindPFlag("clean", flags.Lookup("clean"))
	_ = v.BindPFlag("partial", flags.Lookup("partial"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("color", flags.Lookup("color"))
	_ = v.BindPFlag("trace", flags.Lookup("trace"))
	_ = v.BindPFlag("show_config", flags.Lookup("show-config"))

	return cmd
}

// settings copies the command line and environment settings into the
// parsekit configuration
func settings(v *viper.Viper) *parsekit.Config {
	cfg := parsekit.NewConfig()
	cfg.SetBool("parse.require_eof", !v.GetBool("partial"))
	cfg.SetBool("parse.clean_tree", v.GetBool("clean"))
	cfg.SetBool("display.verbose", v.GetBool("verbose"))
	cfg.SetBool("display.color", v.GetBool("color"))
	return cfg
}

func runCalc(cmd *cobra.Command, args []string, v *viper.Viper) error {
	cfg := settings(v)
	if v.GetBool("show_config") {
		cfg.Debug(cmd.OutOrStdout())
		return nil
	}

	input, err := readInput(cmd, args, v.GetString("file"))
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("trace"))
	if err != nil {
		return err
	}

	theme := ascii.PlainTheme
	if cfg.GetBool("display.color") {
		color.NoColor = false
		theme = ascii.DefaultTheme
	}

	calculator := calc.New(cfg, logger)
	if v.GetBool("tree") {
		node, err := calculator.Parse(input)
		if err != nil {
			return report(cmd.ErrOrStderr(), err, cfg, theme)
		}
		fmt.Fprintln(cmd.OutOrStdout(), parsekit.Highlight(node, theme))
		return nil
	}

	result, err := calculator.Eval(input)
	if err != nil {
		return report(cmd.ErrOrStderr(), err, cfg, theme)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func readInput(cmd *cobra.Command, args []string, path string) (string, error) {
	switch {
	case len(args) > 0:
		return args[0], nil
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrap(err, "can't read expression file")
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "can't read expression from stdin")
		}
		return string(data), nil
	}
}

// newLogger returns nil when tracing is off, so the grammar isn't
// wrapped with observers at all
func newLogger(w io.Writer, level string) (logrus.FieldLogger, error) {
	if level == "" {
		return nil, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid trace level")
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(lvl)
	return logger, nil
}

// report writes parse errors with the configured rendering.  Other
// errors are handed back to main untouched.
func report(w io.Writer, err error, cfg *parsekit.Config, theme ascii.Theme) error {
	var perr *parsekit.ParseError[calc.Tag]
	if !errors.As(err, &perr) {
		return err
	}
	fmt.Fprintln(w, perr.Highlight(theme, cfg.GetBool("display.verbose")))
	return errReported
}
