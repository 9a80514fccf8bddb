package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// printJSON writes v as JSON, indented when stdout is a terminal.
func printJSON(cmd *cobra.Command, v any) error {
	var (
		data []byte
		err  error
	)
	if isTerminal(cmd.OutOrStdout()) {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeOutput copies r to the file at path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, r io.Reader) (int64, error) {
	if path == "" {
		return io.Copy(cmd.OutOrStdout(), r)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
