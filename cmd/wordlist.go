package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"saltcrackr/constants"
	"saltcrackr/storage"
	"saltcrackr/utility"
)

// wordlistCmd represents the wordlist command
var wordlistCmd = &cobra.Command{
	Use:     "wordlist",
	Aliases: []string{"dictionary", "dict", "w"},
	Short:   "Manage the wordlists stored in the S3 bucket",
	Long: `Wordlists stored in the bucket can be used by crack and batch with
--remote-wordlist <alias>. They are streamed, never downloaded whole.`,
}

var wordlistListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the wordlists available for cracking",
	Aliases: []string{"ls", "l"},
	Args:    cobra.ExactArgs(0),
	RunE:    wordlistList,
}

var wordlistAddCmd = &cobra.Command{
	Use:     "add <file> [wordlist-alias]",
	Aliases: []string{"upload"},
	Short:   "Upload a local wordlist, named after the file unless an alias is given",
	Args:    cobra.RangeArgs(1, 2),
	RunE:    wordlistAdd,
}

var wordlistRemoveCmd = &cobra.Command{
	Use:     "remove <wordlist-alias>",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a wordlist from the bucket",
	Args:    cobra.ExactArgs(1),
	RunE:    wordlistRemove,
}

func init() {
	wordlistCmd.AddCommand(wordlistAddCmd)
	wordlistCmd.AddCommand(wordlistListCmd)
	wordlistCmd.AddCommand(wordlistRemoveCmd)
	rootCmd.AddCommand(wordlistCmd)
}

func wordlistList(cmd *cobra.Command, _ []string) error {
	sess, err := getAwsSession()
	if err != nil {
		return err
	}

	files, err := storage.ListFiles(sess, viper.GetString("S3BucketName"), constants.WordlistPrefix)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found a total of [%d] %v\n", len(files), utility.Pluralize("wordlist", len(files)))
	// Print out the files
	for _, fn := range files {
		fmt.Fprintf(out, "- %-30s %10s  %s\n",
			strings.TrimPrefix(aws.StringValue(fn.Key), constants.WordlistPrefix),
			humanize.Bytes(uint64(aws.Int64Value(fn.Size))),
			humanize.Time(aws.TimeValue(fn.LastModified)))
	}

	return nil
}

func wordlistAdd(_ *cobra.Command, args []string) error {
	sess, err := getAwsSession()
	if err != nil {
		return err
	}

	alias := filepath.Base(args[0])
	if len(args) == 2 {
		alias = args[1]
	}

	// Defines the full string that corresponds to the file's key in the S3 bucket
	return storage.Upload(sess, args[0], viper.GetString("S3BucketName"), constants.WordlistPrefix+alias)
}

func wordlistRemove(_ *cobra.Command, args []string) error {
	sess, err := getAwsSession()
	if err != nil {
		return err
	}

	return storage.Delete(sess, viper.GetString("S3BucketName"), constants.WordlistPrefix+args[0])
}
