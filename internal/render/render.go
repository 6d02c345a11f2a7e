// Package render turns a DOT file into an image by running a Graphviz layout
// program (neato, dot, fdp, ...) as a subprocess.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vk/netgraph/internal/ctxlog"
)

// DefaultProgram is the layout program used when none is configured.
const DefaultProgram = "neato"

// DefaultFormat is used when the output path has no extension.
const DefaultFormat = "png"

// DefaultOptions are passed to every layout program ahead of user extras.
var DefaultOptions = []string{"-Gsplines=ortho", "-Goverlap=prism", "-Granksep=2", "-Gnodesep=1"}

// Options configures one rendering run.
type Options struct {
	// Program is the Graphviz executable; DefaultProgram if empty.
	Program string
	// GVFile is the DOT file to render.
	GVFile string
	// Output is the image path; `<GVFile>.png` if empty.
	Output string
	// Extra holds additional command-line options, passed verbatim.
	Extra []string
}

// RenderProcessError reports a layout program that could not be started or
// exited unsuccessfully.
type RenderProcessError struct {
	Command []string
	// ExitCode is -1 when the program never ran to completion.
	ExitCode int
	// Output is the combined stdout and stderr of the program.
	Output string
	Err    error
}

func (e *RenderProcessError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("failed to run %q: %v", strings.Join(e.Command, " "), e.Err)
	}
	msg := fmt.Sprintf("%q exited with code %d", strings.Join(e.Command, " "), e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RenderProcessError) Unwrap() error {
	return e.Err
}

// withDefaults fills in the program and output path.
func (o Options) withDefaults() Options {
	if o.Program == "" {
		o.Program = DefaultProgram
	}
	if o.Output == "" {
		o.Output = o.GVFile + "." + DefaultFormat
	}
	return o
}

// Format returns the output format, taken from the output file extension.
func (o Options) Format() string {
	o = o.withDefaults()
	if ext := strings.TrimPrefix(filepath.Ext(o.Output), "."); ext != "" {
		return ext
	}
	return DefaultFormat
}

// Command returns the full command line of the run, program first.
func (o Options) Command() []string {
	o = o.withDefaults()
	return o.commandTo(o.Output)
}

// commandTo returns the command line writing the image to output.
func (o Options) commandTo(output string) []string {
	cmd := []string{o.Program}
	cmd = append(cmd, DefaultOptions...)
	cmd = append(cmd, o.Extra...)
	return append(cmd, "-T"+o.Format(), o.GVFile, "-o", output)
}

// Run executes the layout program and returns the path of the image. The
// program writes to a temporary file next to the output, which replaces the
// output only on success; a failed run leaves any existing image untouched.
func Run(ctx context.Context, opts Options) (string, error) {
	logger := ctxlog.FromContext(ctx)
	opts = opts.withDefaults()

	tmp, err := os.CreateTemp(filepath.Dir(opts.Output), ".netgraph-*."+opts.Format())
	if err != nil {
		return "", fmt.Errorf("failed to create temporary image file: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to close temporary image file: %w", err)
	}
	defer func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logger.Warn("Could not remove temporary image file.", "path", tmpName, "error", rmErr)
		}
	}()
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("failed to prepare temporary image file: %w", err)
	}

	command := opts.commandTo(tmpName)
	logger.Debug("Running layout program.", "command", strings.Join(command, " "))

	out, err := exec.CommandContext(ctx, command[0], command[1:]...).CombinedOutput()
	if err != nil {
		perr := &RenderProcessError{Command: command, ExitCode: -1, Output: string(out), Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			perr.ExitCode = exitErr.ExitCode()
		}
		return "", perr
	}

	if err := os.Rename(tmpName, opts.Output); err != nil {
		return "", fmt.Errorf("failed to move image into place: %w", err)
	}
	logger.Info("Rendered graph.", "program", opts.Program, "output", opts.Output)
	return opts.Output, nil
}
