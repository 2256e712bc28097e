package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/visionmedia/go-cli-log"

	"saltcrackr/storage"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the S3 bucket that holds remote wordlists",
	Args:  cobra.ExactArgs(0),
	RunE:  initInfra,
}

func initInfra(cmd *cobra.Command, args []string) error {
	sess, err := getAwsSession()
	if err != nil {
		return err
	}

	bucket := viper.GetString("S3BucketName")
	if err := storage.New(sess, bucket); err != nil {
		return err
	}

	log.Info("Init", "bucket %s is ready", bucket)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
