package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/spf13/cobra"
	log "github.com/visionmedia/go-cli-log"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"saltcrackr/constants"
)

var globalCfg config
var awsSession *session.Session

var cfgFile string
var defaultCfgPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   constants.ToolName,
	Short: "Recover passwords from salted digests with a dictionary attack",
	Long: `saltcrackr hashes candidate passwords from wordlists, a built-in list of common
passwords and an optional brute force generator, and compares them against salted
digests until each one is found or the candidates run out.

Wordlists can also be stored in an S3 bucket, see the init and wordlist commands.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func preRun(cmd *cobra.Command, args []string) error {
	return unmarshalConfig()
}

func unmarshalConfig() error {
	return viper.Unmarshal(&globalCfg)
}

// getAwsSession only creates the session on first use, most commands never touch AWS
func getAwsSession() (*session.Session, error) {
	if awsSession != nil {
		return awsSession, nil
	}

	if viper.GetString("S3BucketName") == "" {
		return nil, errNoBucketConfigured
	}

	var err error
	awsSession, err = session.NewSessionWithOptions(session.Options{
		Profile: viper.GetString("ProfileName"),
		Config:  aws.Config{Region: aws.String(viper.GetString("Region"))},
	})

	if err != nil {
		return nil, err
	}

	return awsSession, nil
}

var errNoBucketConfigured = errors.New("no S3 bucket configured, run configuration init first")

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err == nil {
		os.Exit(0)
	} else {
		log.Error(err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		fmt.Sprintf("config file (default is $HOME/%s.yaml)", constants.ConfigFileName),
	)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setDefaults()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".saltcrackr" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(constants.ConfigFileName)

		defaultCfgPath = fmt.Sprintf("%s/%s.yaml", home, constants.ConfigFileName)
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			// Everything has a default, the file is optional
			return
		}

		log.Error(fmt.Errorf("reading %s: %w", viper.ConfigFileUsed(), err))
		os.Exit(-1)
	}
}
