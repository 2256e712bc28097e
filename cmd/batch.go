package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	log "github.com/visionmedia/go-cli-log"

	"saltcrackr/hashfn"
	"saltcrackr/records"
	"saltcrackr/utility"
)

const (
	FormatJSON  = "json"
	FormatLines = "lines"
)

var batchFormat string

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Search for the passwords of every user in a file",
	Long: `Reads users from a JSON document shaped like
  {"users": [{"username": "alice", "password_hash": "...", "email": "..."}]}
or, with --format lines, from username:digest lines. The username is the salt.
Use - to read from standard input.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindCrackFlags,
	RunE:    batch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	addCrackFlags(batchCmd)
	batchCmd.Flags().StringVar(&batchFormat, "format", "",
		"input format, json or lines (default guessed from the file extension)")
}

func batch(cmd *cobra.Command, args []string) error {
	fn, err := schemeFromConfig()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	parsed, err := parseRecords(in, fn, inputFormat(args[0], batchFormat))
	if err != nil {
		return err
	}

	for _, problem := range parsed.Problems {
		log.Error(problem)
	}

	log.Info("Records", "loaded %d %s, skipped %d",
		len(parsed.Targets), utility.Pluralize("user", len(parsed.Targets)), parsed.Skipped)

	if len(parsed.Targets) == 0 {
		return errNoRecords
	}

	return crackAndSummarize(cmd, fn, requestFromConfig(parsed.Targets))
}

func inputFormat(path, format string) string {
	if format != "" {
		return format
	}

	switch filepath.Ext(path) {
	case ".txt", ".lst", ".hashes":
		return FormatLines
	default:
		return FormatJSON
	}
}

func parseRecords(r io.Reader, fn hashfn.Function, format string) (records.Parsed, error) {
	switch format {
	case FormatJSON:
		return records.ParseJSON(r, fn)
	case FormatLines:
		return records.ParseLines(r, fn)
	default:
		return records.Parsed{}, fmt.Errorf("unknown format %q, expected %s or %s", format, FormatJSON, FormatLines)
	}
}
