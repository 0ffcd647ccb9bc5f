package repl

import (
	shellquote "github.com/kballard/go-shellquote"
)

// Tokenize splits an input line into command words using shell quoting
// rules, so a quoted argument may carry embedded spaces. Unbalanced
// quotes return an error and no words.
func Tokenize(line string) ([]string, error) {
	return shellquote.Split(line)
}

// Join renders words back into a single line with shell quoting applied
// where needed. Tokenize(Join(words)) yields words again.
func Join(words []string) string {
	return shellquote.Join(words...)
}
