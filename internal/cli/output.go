package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess = 0
	ExitFailure = 1 // declined, not found or storage failure
	ExitInvalid = 2 // malformed input or usage
)

type usageError struct {
	message string
}

func (e *usageError) Error() string {
	return e.message
}

func usageErrorf(format string, args ...any) error {
	return &usageError{message: fmt.Sprintf(format, args...)}
}

// exactArgs is cobra.ExactArgs with a usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageErrorf("%s", err)
		}

		return nil
	}
}

func ExitCode(err error) int {
	var usage *usageError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage), failure.IsBadRequest(err):
		return ExitInvalid
	default:
		return ExitFailure
	}
}

// Execute runs cmd, reports a failure on stderr and returns the process exit code.
func Execute(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
	}

	return ExitCode(err)
}

type printer struct {
	format string
	out    io.Writer
}

func newPrinter(opts *RootOptions, cmd *cobra.Command) *printer {
	return &printer{format: opts.Format, out: cmd.OutOrStdout()}
}

// print writes data as indented JSON, or hands a tab-aligned writer to text.
func (p *printer) print(data any, text func(w io.Writer)) error {
	if p.format == FormatJSON {
		encoder := json.NewEncoder(p.out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data) //nolint:wrapcheck
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0) //nolint:mnd
	text(tw)

	return tw.Flush() //nolint:wrapcheck
}

func (p *printer) message(msg string) error {
	return p.print(map[string]string{"message": msg}, func(w io.Writer) {
		fmt.Fprintln(w, msg)
	})
}

func printPagination(w io.Writer, pagination *dto.Pagination) {
	if pagination == nil {
		return
	}

	fmt.Fprintf(w, "page %d of %d (%d total)\n", pagination.Page, pagination.TotalPage, pagination.Total)
}

func listFlags(cmd *cobra.Command, page, limit *int) {
	cmd.Flags().IntVar(page, "page", 0, "page number, used with --limit")
	cmd.Flags().IntVar(limit, "limit", 0, "page size; 0 lists everything")
}

func money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
