package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/vk/netgraph/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// newCommand defines the root command. Its action only captures the parsed
// configuration; running the conversion is the caller's job.
func newCommand(output io.Writer, parsed **app.Config) *cli.Command {
	return &cli.Command{
		Name:      "netgraph",
		Usage:     "Draw a reaction network model as a dependency graph.",
		UsageText: "netgraph [options] --input MODEL",
		Description: "MODEL is an SBML file (.xml, .sbml), an HCL model file (.hcl) or a directory of\n" +
			"HCL model files. The graph is written in DOT format and rendered with a\n" +
			"Graphviz layout program.",
		Writer:                    output,
		ErrWriter:                 output,
		HideHelpCommand:           true,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "model file or directory"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "rendered image; format follows the extension (default: GV_FILE.png)"},
			&cli.StringFlag{Name: "graphviz-program", Aliases: []string{"p"}, Value: "neato", Usage: "Graphviz layout engine, e.g. neato, dot, twopi, circo"},
			&cli.StringSliceFlag{Name: "gv-extra", Aliases: []string{"e"}, Usage: "extra option passed to the layout program, e.g. -Gsplines=line (repeatable)"},
			&cli.StringFlag{Name: "gv-file", Usage: "DOT file to write (default: MODEL.gv)"},
			&cli.StringFlag{Name: "json", Usage: "also write the graph as JSON to this path"},
			&cli.BoolFlag{Name: "no-render", Usage: "write the DOT file only"},
			&cli.StringFlag{Name: "log-format", Value: "text", Usage: "log output format: 'text' or 'json'"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "logging level: 'debug', 'info', 'warn', 'error'"},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(_ context.Context, cmd *cli.Command) error {
			config, err := configFromCommand(cmd)
			if err != nil {
				return err
			}
			*parsed = config
			return nil
		},
	}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if len(args) == 0 {
		args = []string{"--help"}
	}

	var config *app.Config
	cmd := newCommand(output, &config)
	if err := cmd.Run(context.Background(), append([]string{cmd.Name}, args...)); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Help was printed and the action never ran.
	if config == nil {
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "input", config.InputPath)
	return config, false, nil
}

func configFromCommand(cmd *cli.Command) (*app.Config, error) {
	input := cmd.String("input")
	if input == "" && cmd.Args().Len() > 0 {
		input = cmd.Args().First()
	}
	if input == "" {
		return nil, &ExitError{Code: 2, Message: "an input model is required: use --input MODEL"}
	}
	slog.Debug("Input path determined.", "path", input)

	logFormat := strings.ToLower(cmd.String("log-format"))
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(cmd.String("log-level"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		InputPath:  input,
		GVFile:     cmd.String("gv-file"),
		OutputPath: cmd.String("output"),
		JSONPath:   cmd.String("json"),
		Program:    cmd.String("graphviz-program"),
		Extra:      cmd.StringSlice("gv-extra"),
		NoRender:   cmd.Bool("no-render"),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, nil
}
