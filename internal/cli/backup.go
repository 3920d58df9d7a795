package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/simaogato/lifedash-backend/internal/adapter/backup"
)

type backupCmd struct{}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "upload a snapshot to the configured S3 bucket" }
func (*backupCmd) Usage() string {
	return `dashctl backup

  Exports every domain and uploads the document to S3_BUCKET under S3_PREFIX.
`
}

func (*backupCmd) SetFlags(*flag.FlagSet) {}

func (*backupCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.close()

	if !s.cfg.BackupEnabled() {
		fmt.Fprintln(os.Stderr, "S3_BUCKET is not set")
		return subcommands.ExitUsageError
	}

	sink, err := backup.NewS3Sink(ctx, s.cfg.S3Region, s.cfg.S3Bucket, s.cfg.S3Prefix)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := s.services.Snapshot.Backup(ctx, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error uploading backup: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Uploaded %d records (%d bytes) to %s\n", result.Stats.Total, result.Size, result.Location)
	return subcommands.ExitSuccess
}
