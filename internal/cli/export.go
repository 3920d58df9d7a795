package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a full snapshot of every domain as JSON" }
func (*exportCmd) Usage() string {
	return `dashctl export [-o <file>]

  Reads every record from the store and writes the export document,
  the same one the HTTP export endpoint serves. Writes to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.close()

	snap, err := s.services.Snapshot.Export(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}

	w, err := output(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening output %q: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	defer w.Close()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.out != "" && c.out != "-" {
		fmt.Fprintf(os.Stderr, "Exported %d records to %s\n", snap.Stats.Total, c.out)
	}
	return subcommands.ExitSuccess
}
