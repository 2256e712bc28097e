package utility

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	assert.Equal(t, "files", Pluralize("file", 0))
	assert.Equal(t, "file", Pluralize("file", 1))
	assert.Equal(t, "files", Pluralize("file", 2))
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("us-east-1\r\nlast"))

	assert.Equal(t, "us-east-1", readLine(r))
	assert.Equal(t, "last", readLine(r))
}
