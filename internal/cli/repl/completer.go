package repl

import (
	"strings"

	"github.com/chzyer/readline"
)

// Completer provides prefix completion over the triedis command set.
type Completer struct {
	commands []string
}

// NewCompleter creates a Completer covering the commands the triedis
// server accepts plus the client-local quit commands.
func NewCompleter() *Completer {
	return &Completer{
		commands: []string{
			"PING",
			"SELECT",
			"SET",
			"GET",
			"DEL",
			"DBSIZE",
			"FLUSHDB",
			"INFO", "INFO KEYSPACE",
			"quit", "exit",
		},
	}
}

// Complete returns completion suggestions for the given prefix,
// case-insensitively.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	lower := strings.ToLower(prefix)
	for _, cmd := range c.commands {
		if strings.HasPrefix(strings.ToLower(cmd), lower) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}

// Readline builds the readline completer for interactive sessions.
func (c *Completer) Readline() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(c.commands))
	for _, cmd := range c.commands {
		items = append(items, readline.PcItem(cmd))
	}
	return readline.NewPrefixCompleter(items...)
}
