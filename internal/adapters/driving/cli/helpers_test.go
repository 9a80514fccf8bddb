package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of cmd and its children to its default,
// since cobra keeps parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI with args against a fresh config directory and
// returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

func executeIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	configStore = nil
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config-dir", dir}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

// request is what a fake API server saw.
type request struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   map[string]any
	Raw    []byte
}

// recorder collects the requests a fake API server received.
type recorder struct {
	mu   sync.Mutex
	reqs []request
}

func (r *recorder) all() []request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]request(nil), r.reqs...)
}

func (r *recorder) at(i int) request {
	return r.all()[i]
}

// fakeAPI starts a server that records each request and replies with status
// and body.
func fakeAPI(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()

	seen := new(recorder)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := request{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Header: r.Header.Clone()}
		rec.Raw, _ = io.ReadAll(r.Body)
		if len(rec.Raw) > 0 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			assert.NoError(t, json.Unmarshal(rec.Raw, &rec.Body))
		}
		seen.mu.Lock()
		seen.reqs = append(seen.reqs, rec)
		seen.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

// decodeOutput parses the JSON the CLI printed.
func decodeOutput(t *testing.T, out string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m), out)
	return m
}
