package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"saltcrackr/hashfn"
)

// digestCmd represents the digest command
var digestCmd = &cobra.Command{
	Use:     "digest <salt> <password>",
	Aliases: []string{"hash"},
	Short:   "Print the salted digest of a password, handy for building test records",
	Args:    cobra.ExactArgs(2),
	PreRunE: bindCrackFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, err := schemeFromConfig()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), fn.Digest(args[0], args[1]))
		return nil
	},
}

var algorithmsCmd = &cobra.Command{
	Use:     "algorithms",
	Aliases: []string{"algs"},
	Short:   "List the digest primitives and salt orders available",
	Args:    cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Primitives:")
		for _, name := range hashfn.Primitives() {
			primitive, _ := hashfn.Lookup(name)
			fmt.Fprintf(out, "- %-12s %d hex digits\n", name, primitive().Size()*2)
		}

		orders := make([]string, 0, len(hashfn.Orders()))
		for _, o := range hashfn.Orders() {
			orders = append(orders, string(o))
		}
		fmt.Fprintf(out, "Salt orders: %s\n", strings.Join(orders, ", "))
		fmt.Fprintln(out, "Schemes are written primitive/order/xROUNDS, e.g. sha256/suffix/x1000")
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(algorithmsCmd)

	digestCmd.Flags().String("algorithm", hashfn.DefaultPrimitive, "digest primitive")
	digestCmd.Flags().String("salt-order", string(hashfn.SaltPrefix), "where the salt goes: prefix, suffix or none")
	digestCmd.Flags().Int("rounds", 1, "number of times the digest is applied")
}
