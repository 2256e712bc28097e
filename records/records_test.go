package records

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saltcrackr/hashfn"
	"saltcrackr/target"
)

const debugUsers = `{
  "users": [
    {"id": 1, "username": "admin", "password_hash": "172eee54aa664e9dd0536b063796e54e", "email": "admin@retrotech.local"},
    {"id": 2, "username": "demo", "password_hash": "C514C91E4ED341F263E458D44B3BB0A7", "email": ""},
    {"id": 3, "username": "", "password_hash": "3cbd90f69e8edaacaf1962ffae7b0588"},
    {"id": 4, "username": "alice", "password_hash": "not-a-digest"},
    {"id": 5, "username": "bob", "password_hash": "7bf9cb12f232a2291d7b2cd738e8bc"},
    {"id": 6, "username": "carol", "password_hash": "69188075f1298a36bc85660cbfa8a272", "email": "nope"},
    42
  ],
  "debug": true,
  "version": "2.3.0"
}`

func TestParseJSON(t *testing.T) {
	p, err := ParseJSON(strings.NewReader(debugUsers), hashfn.MD5Salted())
	require.NoError(t, err)

	require.Len(t, p.Targets, 2)
	assert.Equal(t, 5, p.Skipped)
	assert.Len(t, p.Problems, 5)

	for _, problem := range p.Problems {
		assert.ErrorIs(t, problem, ErrMalformedRecord)
	}
	assert.ErrorIs(t, p.Problems[2], target.ErrInvalidDigestFormat)

	admin := p.Targets[0]
	assert.Equal(t, "admin", admin.Salt())
	assert.Equal(t, "admin", admin.Label())
	assert.Equal(t, "admin@retrotech.local", admin.Meta(MetaEmail))

	demo := p.Targets[1]
	assert.Equal(t, "c514c91e4ed341f263e458d44b3bb0a7", demo.Digest())
	assert.Empty(t, demo.Meta(MetaEmail))
}

func TestParseJSON_UsernameKeptVerbatim(t *testing.T) {
	fn := hashfn.MD5Salted()
	doc := `{"users": [
		{"username": " alice", "password_hash": "` + fn.Digest(" alice", "pw") + `"},
		{"username": "   ", "password_hash": "` + fn.Digest("   ", "pw") + `"}
	]}`

	p, err := ParseJSON(strings.NewReader(doc), fn)
	require.NoError(t, err)

	require.Len(t, p.Targets, 1)
	assert.Equal(t, " alice", p.Targets[0].Salt())
	assert.Equal(t, p.Targets[0].Digest(), fn.Digest(p.Targets[0].Salt(), "pw"))

	assert.Equal(t, 1, p.Skipped)
	assert.ErrorIs(t, p.Problems[0], errBlankUsername)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON(strings.NewReader("{users: oops"), hashfn.MD5Salted())
	assert.Error(t, err)
}

func TestParseJSON_NoUsers(t *testing.T) {
	p, err := ParseJSON(strings.NewReader(`{"debug": true}`), hashfn.MD5Salted())
	require.NoError(t, err)
	assert.Empty(t, p.Targets)
	assert.Zero(t, p.Skipped)
}

func TestParseLines(t *testing.T) {
	input := strings.Join([]string{
		"# exported from the legacy system",
		"admin:172eee54aa664e9dd0536b063796e54e",
		"",
		"test.user:3cbd90f69e8edaacaf1962ffae7b0588",
		"nocolon",
		"bob:xyz",
	}, "\n")

	p, err := ParseLines(strings.NewReader(input), hashfn.MD5Salted())
	require.NoError(t, err)

	require.Len(t, p.Targets, 2)
	assert.Equal(t, "admin", p.Targets[0].Salt())
	assert.Equal(t, "test.user", p.Targets[1].Salt())
	assert.Equal(t, 2, p.Skipped)
	assert.Contains(t, p.Problems[0].Error(), "5")
}
