// Handles a cracking run, from assembling the candidate source to collecting results
package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/google/uuid"
	log "github.com/visionmedia/go-cli-log"

	"saltcrackr/constants"
	"saltcrackr/engine"
	"saltcrackr/hashfn"
	"saltcrackr/source"
	"saltcrackr/storage"
	"saltcrackr/target"
)

var (
	// ErrNoTargets when a request carries nothing to crack
	ErrNoTargets = errors.New("no targets to crack")
	// ErrNoBucket when remote wordlists are requested without a configured bucket
	ErrNoBucket = errors.New("remote wordlists need an S3 bucket and AWS session")
)

// Request describes one run. It replaces the prompts of an interactive session.
type Request struct {
	Targets []target.Descriptor
	// Wordlists are local paths; only the first that exists is used
	Wordlists []string
	// RemoteWordlists are names under the bucket's wordlist prefix, all of them are used
	RemoteWordlists []string
	Builtin         bool
	Dedupe          bool
	Rules           []string
	BruteForce      *source.BruteForce
	Workers         int
	ReportEvery     int64
	// Timeout of zero means no limit
	Timeout  time.Duration
	Reporter engine.Reporter
}

// Report is what a run hands back for display
type Report struct {
	ID      string
	Source  string
	Results []engine.Result
	Cracked int
	Elapsed time.Duration
}

// Remote is where remote wordlists are read from
type Remote struct {
	Session *session.Session
	Bucket  string
}

// BuildSource assembles candidates in this order: the first available local wordlist, remote
// wordlists, the brute force generator, the built-in list. Rules apply to everything before
// deduplication. The description says which parts were used.
func BuildSource(req Request, remote []source.Source) (source.Source, string, error) {
	var parts []source.Source
	var desc []string

	if f, path := source.FirstAvailable(req.Wordlists...); f != nil {
		parts = append(parts, f)
		desc = append(desc, path)
	} else if len(req.Wordlists) > 0 {
		log.Info("Wordlist", "none of %s found", strings.Join(req.Wordlists, ", "))
	}

	for _, r := range remote {
		parts = append(parts, r)
		desc = append(desc, fmt.Sprint(r))
	}

	if req.BruteForce != nil {
		parts = append(parts, *req.BruteForce)
		desc = append(desc, fmt.Sprintf("brute force %d-%d", req.BruteForce.MinLength, req.BruteForce.MaxLength))
	}

	if req.Builtin {
		parts = append(parts, source.Builtin())
		desc = append(desc, "built-in list")
	}

	src := source.Chain(parts...)

	if len(req.Rules) > 0 {
		var err error
		src, err = source.Rules(src, req.Rules...)
		if err != nil {
			return nil, "", err
		}
		desc = append(desc, "rules "+strings.Join(req.Rules, ","))
	}

	if req.Dedupe {
		src = source.Dedupe(src)
		desc = append(desc, "deduplicated")
	}

	if len(desc) == 0 {
		desc = append(desc, "empty")
	}

	return src, strings.Join(desc, " + "), nil
}

func remoteSources(remote *Remote, names []string) ([]source.Source, error) {
	if len(names) == 0 {
		return nil, nil
	}

	if remote == nil || remote.Session == nil || remote.Bucket == "" {
		return nil, ErrNoBucket
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = constants.WordlistPrefix + strings.TrimPrefix(name, constants.WordlistPrefix)
	}

	// Check for the presence of the wordlists before searching anything
	if err := storage.StatMultiple(remote.Session, remote.Bucket, keys...); err != nil {
		return nil, err
	}

	return storage.Objects(remote.Session, remote.Bucket, keys...), nil
}

// Crack runs every target of req. Configuration problems are returned as errors; the outcome
// of each target, including failures to read the source, is in the report.
func Crack(ctx context.Context, fn hashfn.Function, req Request, remote *Remote) (Report, error) {
	if len(req.Targets) == 0 {
		return Report{}, ErrNoTargets
	}

	remotes, err := remoteSources(remote, req.RemoteWordlists)
	if err != nil {
		return Report{}, err
	}

	src, desc, err := BuildSource(req, remotes)
	if err != nil {
		return Report{}, err
	}

	eng, err := engine.New(engine.Config{
		Hash:        fn,
		ReportEvery: req.ReportEvery,
		Reporter:    req.Reporter,
		Workers:     req.Workers,
	})
	if err != nil {
		return Report{}, err
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	report := Report{ID: uuid.NewString(), Source: desc}
	log.Info("Crack", "run %s: %d targets, %s, candidates from %s", report.ID, len(req.Targets), fn.Name(), desc)

	start := time.Now()
	report.Results, err = eng.RunBatch(ctx, req.Targets, src)
	if err != nil {
		return Report{}, err
	}
	report.Elapsed = time.Since(start)

	for _, res := range report.Results {
		if res.Found() {
			report.Cracked++
		}
	}

	return report, nil
}
