package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/visionmedia/go-cli-log"

	"saltcrackr/constants"
	"saltcrackr/storage"
	"saltcrackr/utility"
)

// teardownCmd represents the teardown command
var teardownCmd = &cobra.Command{
	Use:   "teardown",
	Short: "Delete the stored wordlists and the bucket. Use conf clean to remove the configuration file.",
	Args:  cobra.ExactArgs(0),
	RunE:  tearDown,
}

var force bool

func tearDown(cmd *cobra.Command, args []string) error {
	sess, err := getAwsSession()
	if err != nil {
		return err
	}

	bucket := viper.GetString("S3BucketName")

	if !force {
		accept := utility.GetBoolean("This will remove every wordlist and the bucket " + bucket + ". " +
			"This operation cannot be reversed. Proceed?")
		if !accept {
			return nil
		}
	}

	deleted, err := storage.DeleteAll(sess, bucket, constants.WordlistPrefix)
	if err != nil {
		return err
	}
	log.Info("Teardown", "deleted %d %s", deleted, utility.Pluralize("wordlist", deleted))

	if err := storage.DeleteBucket(sess, bucket); err != nil {
		return err
	}
	log.Info("Teardown", "deleted bucket %s", bucket)

	return nil
}

func init() {
	rootCmd.AddCommand(teardownCmd)
	teardownCmd.Flags().BoolVar(&force, "force", false, "used to force teardown, avoid prompt")
}
