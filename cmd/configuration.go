package cmd

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/visionmedia/go-cli-log"

	"saltcrackr/utility"
)

const (
	UserCreateConfigurationDeniedError = "user did not want to create config"
	FixedConfigCommandError            = "command doesn't work with custom config path"
)

// Fields with an instr tag are asked for by configuration init, the rest have defaults
type config struct {
	Region       string `instr:"The AWS region to use"`
	ProfileName  string `instr:"The name of the profile to use (see ~/.aws/credentials)"`
	S3BucketName string `instr:"The name of the S3 bucket holding the wordlists"`

	Algorithm       string
	SaltOrder       string
	Rounds          int
	Wordlists       []string
	RemoteWordlists []string
	Builtin         bool
	Dedupe          bool
	Rules           []string
	BruteCharset    string
	BruteMin        int
	BruteMax        int
	Workers         int
	ReportEvery     int64
	Timeout         time.Duration
	Bar             bool
	Resources       bool
}

var cfgFormat = config{}

// configureCmd represents the configure command
var configurationCmd = &cobra.Command{
	Use:     "configuration",
	Aliases: []string{"config", "cfg", "conf", "c"},
	Short:   "Handle the configuration of the program",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration settings",
	Args:  cobra.ExactArgs(0),
	Run:   showConfig,
}

var configCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Removes the current configuration file",
	Args:  cobra.ExactArgs(0),
	RunE:  configClean,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Shows the default configuration location",
	Args:  cobra.ExactArgs(0),
	RunE:  configWhere,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Asks for the AWS settings and writes the configuration file",
	Args:  cobra.ExactArgs(0),
	RunE:  configInit,
}

func init() {
	configurationCmd.AddCommand(configShowCmd)
	configurationCmd.AddCommand(configCleanCmd)
	configurationCmd.AddCommand(configWhereCmd)
	configurationCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(configurationCmd)
}

func showConfig(_ *cobra.Command, _ []string) {
	for _, key := range viper.AllKeys() {
		log.Info(key, "%v", viper.Get(key))
	}
}

func generateConfig() error {
	confirm := utility.GetBoolean("Do you want to create a config now?")

	if !confirm {
		return errors.New(UserCreateConfigurationDeniedError)
	}

	// Necessary evil of reflect to make the config logic more elegant
	v := reflect.TypeOf(cfgFormat)

	fmt.Println("The bucket will be created by running init, an existing bucket you own works too")

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		instr, ok := field.Tag.Lookup("instr")
		if !ok {
			continue
		}

		fmt.Println("> " + instr)
		input := utility.GetInput(field.Name)
		viper.Set(field.Name, input)
	}

	return nil
}

func configInit(c *cobra.Command, _ []string) error {
	cfgPath := defaultCfgPath
	if flag := c.Flag("config"); flag != nil && flag.Value.String() != "" {
		cfgPath = flag.Value.String()
	}

	if err := generateConfig(); err != nil {
		return err
	}

	if err := viper.WriteConfigAs(cfgPath); err != nil {
		return err
	}

	log.Info("Configuration", "written to %s", cfgPath)
	return nil
}

func configWhere(c *cobra.Command, _ []string) error {
	if c.Flag("config").Value.String() != "" {
		return errors.New(FixedConfigCommandError)
	}

	fmt.Println(defaultCfgPath)
	return nil
}

func configClean(c *cobra.Command, _ []string) error {
	if c.Flag("config").Value.String() != "" {
		return errors.New(FixedConfigCommandError)
	}

	err := os.Remove(defaultCfgPath)
	return err
}
