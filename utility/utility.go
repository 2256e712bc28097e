package utility

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var reader = bufio.NewReader(os.Stdin)

// GetInput prompts on stdout and reads one line from stdin
func GetInput(prompt string) string {
	fmt.Print(prompt + ": ")
	return readLine(reader)
}

func readLine(r *bufio.Reader) string {
	input, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		os.Exit(1)
	}

	return strings.TrimRight(input, "\r\n")
}

func GetBoolean(prompt string) bool {
	return GetInput(fmt.Sprintf("%s [y/n] ", prompt)) == "y"
}

// Pluralize appends an "s" to word unless count is exactly one
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
