package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	file string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against an export" }
func (*queryCmd) Usage() string {
	return `dashctl query [-f <export.json>] <jsonpath>

  Evaluates the JSONPath expression against an export file, or against a
  fresh export of the store when -f is not given, and prints the result.

  Example:
    dashctl query -f backup.json '$.data.tasks[?(@.status=="pending")].title'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Export file to query. Defaults to a fresh export.")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "query requires exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	doc, err := c.document(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := Query(os.Stdout, f.Arg(0), doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// document loads the export to query as generic JSON
func (c *queryCmd) document(ctx context.Context) (interface{}, error) {
	var raw []byte
	if c.file != "" {
		data, err := os.ReadFile(c.file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", c.file, err)
		}
		raw = data
	} else {
		s, err := openSession(ctx)
		if err != nil {
			return nil, err
		}
		defer s.close()

		snap, err := s.services.Snapshot.Export(ctx)
		if err != nil {
			return nil, fmt.Errorf("error exporting: %w", err)
		}
		if raw, err = json.Marshal(snap); err != nil {
			return nil, err
		}
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding export: %w", err)
	}
	return doc, nil
}

// Query evaluates path against doc and writes the result as indented JSON
func Query(w io.Writer, path string, doc interface{}) error {
	value, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", path, err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
