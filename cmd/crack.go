package cmd

import (
	"github.com/spf13/cobra"

	"saltcrackr/target"
)

var crackLabel string

// crackCmd represents the crack command
var crackCmd = &cobra.Command{
	Use:     "crack <digest> <salt>",
	Short:   "Search for the password behind one salted digest",
	Example: "  saltcrackr crack 172eee54aa664e9dd0536b063796e54e admin --wordlist rockyou.txt",
	Args:    cobra.ExactArgs(2),
	PreRunE: bindCrackFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, err := schemeFromConfig()
		if err != nil {
			return err
		}

		label := crackLabel
		if label == "" {
			label = args[1]
		}

		t, err := target.New(fn, args[1], args[0], target.WithLabel(label))
		if err != nil {
			return err
		}

		return crackAndSummarize(cmd, fn, requestFromConfig([]target.Descriptor{t}))
	},
}

func init() {
	rootCmd.AddCommand(crackCmd)

	addCrackFlags(crackCmd)
	crackCmd.Flags().StringVar(&crackLabel, "label", "", "name shown for the target (default is the salt)")
}
