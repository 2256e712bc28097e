package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saltcrackr/engine"
	"saltcrackr/hashfn"
	"saltcrackr/records"
	"saltcrackr/runner"
	"saltcrackr/target"
)

// execute runs the root command against a config file that does not exist
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDigestCommand(t *testing.T) {
	out, err := execute(t, "digest", "", "password")
	require.NoError(t, err)
	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99\n", out)

	out, err = execute(t, "digest", "alice", "alicepw", "--algorithm", "sha256", "--rounds", "2")
	require.NoError(t, err)

	fn, err := hashfn.New("sha256", hashfn.SaltPrefix, 2)
	require.NoError(t, err)
	assert.Equal(t, fn.Digest("alice", "alicepw")+"\n", out)

	_, err = execute(t, "digest", "alice", "alicepw", "--algorithm", "crc32")
	assert.ErrorIs(t, err, hashfn.ErrUnknownPrimitive)
}

func TestAlgorithmsCommand(t *testing.T) {
	out, err := execute(t, "algorithms")
	require.NoError(t, err)

	assert.Contains(t, out, "md5          32 hex digits")
	assert.Contains(t, out, "sha512       128 hex digits")
	assert.Contains(t, out, "prefix, suffix, none")
}

func TestBatchCommand(t *testing.T) {
	fn := hashfn.MD5Salted()
	dir := t.TempDir()

	wordlist := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(wordlist, []byte("123456\nalicepw\n"), 0644))

	users := `{"users": [
		{"username": "alice", "password_hash": "` + fn.Digest("alice", "alicepw") + `", "email": "alice@example.com"},
		{"username": "bob", "password_hash": "` + fn.Digest("bob", "not in any list") + `"},
		{"username": "broken", "password_hash": "xyz"}
	]}`
	input := filepath.Join(dir, "users.json")
	require.NoError(t, os.WriteFile(input, []byte(users), 0644))

	out, err := execute(t, "batch", input, "--wordlist", wordlist, "--builtin=false", "--workers", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Successfully cracked: 1/2 passwords")
	assert.Contains(t, out, "alicepw")
	assert.Contains(t, out, "email: alice@example.com")
	assert.NotContains(t, out, "incomplete")
}

func TestBatchCommand_NoRecords(t *testing.T) {
	input := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(input, []byte("# nothing here\n"), 0644))

	_, err := execute(t, "batch", input)
	assert.ErrorIs(t, err, errNoRecords)
}

func TestCrackCommand_BadDigest(t *testing.T) {
	_, err := execute(t, "crack", "abc", "alice")
	assert.ErrorIs(t, err, target.ErrInvalidDigestFormat)
}

func TestInputFormat(t *testing.T) {
	assert.Equal(t, FormatLines, inputFormat("users.txt", ""))
	assert.Equal(t, FormatJSON, inputFormat("users.json", ""))
	assert.Equal(t, FormatJSON, inputFormat("-", ""))
	assert.Equal(t, FormatLines, inputFormat("users.json", FormatLines))

	_, err := parseRecords(strings.NewReader(""), hashfn.MD5Salted(), "xml")
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	fn := hashfn.MD5Salted()
	alice, err := target.New(fn, "alice", fn.Digest("alice", "alicepw"), target.WithMeta(records.MetaEmail, "alice@example.com"))
	require.NoError(t, err)
	bob, err := target.New(fn, "bob", fn.Digest("bob", "x"))
	require.NoError(t, err)

	var out bytes.Buffer
	c := rootCmd
	c.SetOut(&out)
	defer c.SetOut(nil)

	printSummary(c, runner.Report{
		Results: []engine.Result{
			{Target: alice, Outcome: engine.Found, Password: "alicepw", Tested: 12345},
			{Target: bob, Outcome: engine.Cancelled, Tested: 99},
		},
		Cracked: 1,
	})

	assert.Contains(t, out.String(), "Successfully cracked: 1/2 passwords")
	assert.Contains(t, out.String(), "Search incomplete for 1 target,")
	assert.Contains(t, out.String(), "tested: 12,345 email: alice@example.com")
}
