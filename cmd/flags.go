package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"saltcrackr/constants"
	"saltcrackr/engine"
	"saltcrackr/hashfn"
	"saltcrackr/progress"
	"saltcrackr/records"
	"saltcrackr/runner"
	"saltcrackr/source"
	"saltcrackr/target"
	"saltcrackr/utility"
)

// Flag name -> configuration key
var crackFlagKeys = map[string]string{
	"algorithm":       "Algorithm",
	"salt-order":      "SaltOrder",
	"rounds":          "Rounds",
	"wordlist":        "Wordlists",
	"remote-wordlist": "RemoteWordlists",
	"builtin":         "Builtin",
	"dedupe":          "Dedupe",
	"rules":           "Rules",
	"brute-charset":   "BruteCharset",
	"brute-min":       "BruteMin",
	"brute-max":       "BruteMax",
	"workers":         "Workers",
	"report-every":    "ReportEvery",
	"timeout":         "Timeout",
	"bar":             "Bar",
	"resources":       "Resources",
}

func setDefaults() {
	viper.SetDefault("Algorithm", hashfn.DefaultPrimitive)
	viper.SetDefault("SaltOrder", string(hashfn.SaltPrefix))
	viper.SetDefault("Rounds", 1)
	viper.SetDefault("Wordlists", constants.DefaultWordlists)
	viper.SetDefault("Builtin", true)
	viper.SetDefault("Dedupe", true)
	viper.SetDefault("Workers", 1)
	viper.SetDefault("BruteMin", 1)
	viper.SetDefault("BruteMax", 4)
}

// addCrackFlags registers the flags shared by every command that runs the engine
func addCrackFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.String("algorithm", hashfn.DefaultPrimitive,
		fmt.Sprintf("digest primitive (%s)", strings.Join(hashfn.Primitives(), ", ")))
	f.String("salt-order", string(hashfn.SaltPrefix), "where the salt goes: prefix, suffix or none")
	f.Int("rounds", 1, "number of times the digest is applied")
	f.StringSlice("wordlist", constants.DefaultWordlists, "local wordlists, the first one found is used")
	f.StringSlice("remote-wordlist", nil, "wordlists stored in the S3 bucket, all are used")
	f.Bool("builtin", true, "append the built-in common password list")
	f.Bool("dedupe", true, "skip candidates already tested for the current target")
	f.StringSlice("rules", nil,
		fmt.Sprintf("mangling rules applied to every candidate (%s)", strings.Join(source.RuleNames(), ", ")))
	f.String("brute-charset", "", "also try every string over this charset")
	f.Int("brute-min", 1, "shortest brute force candidate")
	f.Int("brute-max", 4, "longest brute force candidate")
	f.Int("workers", 1, "targets cracked in parallel")
	f.Int64("report-every", 0, "candidates between progress lines (0 picks by wordlist size)")
	f.Duration("timeout", 0, "stop searching after this long (0 for no limit)")
	f.Bool("bar", false, "draw a progress bar instead of progress lines")
	f.Bool("resources", false, "log CPU and memory use after each target")
}

// bindCrackFlags is a PreRunE: binding at run time means only the invoked command's flags
// override the configuration file
func bindCrackFlags(cmd *cobra.Command, _ []string) error {
	var err error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		key, ok := crackFlagKeys[flag.Name]
		if !ok || err != nil {
			return
		}
		err = viper.BindPFlag(key, flag)
	})
	if err != nil {
		return err
	}

	return unmarshalConfig()
}

func schemeFromConfig() (*hashfn.Scheme, error) {
	return hashfn.New(globalCfg.Algorithm, hashfn.Order(globalCfg.SaltOrder), globalCfg.Rounds)
}

func requestFromConfig(targets []target.Descriptor) runner.Request {
	req := runner.Request{
		Targets:         targets,
		Wordlists:       globalCfg.Wordlists,
		RemoteWordlists: globalCfg.RemoteWordlists,
		Builtin:         globalCfg.Builtin,
		Dedupe:          globalCfg.Dedupe,
		Rules:           globalCfg.Rules,
		Workers:         globalCfg.Workers,
		ReportEvery:     globalCfg.ReportEvery,
		Timeout:         globalCfg.Timeout,
	}

	if globalCfg.BruteCharset != "" {
		req.BruteForce = &source.BruteForce{
			Charset:   globalCfg.BruteCharset,
			MinLength: globalCfg.BruteMin,
			MaxLength: globalCfg.BruteMax,
		}
	}

	var reporters []engine.Reporter

	// A bar only makes sense when one target is searched at a time
	if globalCfg.Bar && req.Workers <= 1 {
		reporters = append(reporters, progress.NewBar(os.Stderr), progress.NewConsole(false))
	} else {
		reporters = append(reporters, progress.NewConsole(true))
	}

	if globalCfg.Resources {
		reporters = append(reporters, progress.NewResources())
	}

	req.Reporter = engine.Multi(reporters...)

	return req
}

func remoteFromConfig(req runner.Request) (*runner.Remote, error) {
	if len(req.RemoteWordlists) == 0 {
		return nil, nil
	}

	if globalCfg.S3BucketName == "" {
		return nil, runner.ErrNoBucket
	}

	sess, err := getAwsSession()
	if err != nil {
		return nil, err
	}

	return &runner.Remote{Session: sess, Bucket: globalCfg.S3BucketName}, nil
}

// crackAndSummarize runs req until it finishes or the user hits Ctrl-C
func crackAndSummarize(cmd *cobra.Command, fn hashfn.Function, req runner.Request) error {
	remote, err := remoteFromConfig(req)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := runner.Crack(ctx, fn, req, remote)
	if err != nil {
		return err
	}

	printSummary(cmd, report)

	return nil
}

func printSummary(cmd *cobra.Command, report runner.Report) {
	out := cmd.OutOrStdout()
	total := len(report.Results)

	fmt.Fprintf(out, "\nSuccessfully cracked: %d/%d %s in %s\n",
		report.Cracked, total, utility.Pluralize("password", total), report.Elapsed.Round(time.Millisecond))

	var incomplete int
	for _, res := range report.Results {
		if res.Outcome == engine.Cancelled || res.Outcome == engine.Failed {
			incomplete++
		}
	}

	if incomplete > 0 {
		fmt.Fprintf(out, "Search incomplete for %d %s, a negative result there is not conclusive\n",
			incomplete, utility.Pluralize("target", incomplete))
	}

	if report.Cracked == 0 {
		return
	}

	fmt.Fprintln(out, "\nCracked credentials:")
	for _, res := range report.Results {
		if !res.Found() {
			continue
		}

		line := fmt.Sprintf("- %-15s password: %-20s tested: %s", res.Target.Label(), res.Password,
			humanize.Comma(res.Tested))
		if email := res.Target.Meta(records.MetaEmail); email != "" {
			line += " email: " + email
		}
		fmt.Fprintln(out, line)
	}
}

var errNoRecords = errors.New("no valid user data found")
