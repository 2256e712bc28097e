// Values shared between the CLI and the packages it drives
package constants

const (
	ToolName = "saltcrackr"
	// EnvPrefix for configuration read from the environment, e.g. SALTCRACKR_WORKERS
	EnvPrefix      = "SALTCRACKR"
	ConfigFileName = ".saltcrackr"

	// WordlistPrefix is where wordlists live in the bucket
	WordlistPrefix = "wordlist/"
)

// DefaultWordlists are tried in order and the first one present is used
var DefaultWordlists = []string{"rockyou.txt", "passwords.txt"}
