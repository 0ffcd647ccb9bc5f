package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/tannerklineintz/triedis-cli/internal/cli/output"
	"github.com/tannerklineintz/triedis-cli/internal/reply"
	"github.com/tannerklineintz/triedis-cli/internal/telemetry/logger"
)

// Executor sends one command to the server and returns the decoded reply.
type Executor interface {
	Execute(name string, args ...string) (reply.Value, error)
}

// Config carries the knobs the driver needs. Prompt and history location
// are injected here rather than read from process-wide globals so the
// loop stays testable.
type Config struct {
	// Prompt is printed before each read.
	Prompt string

	// HistoryFile overrides the default history location.
	HistoryFile string
}

// DefaultPrompt is the interactive prompt.
const DefaultPrompt = "triedis> "

// REPL is the Read-Eval-Print Loop. One instance drives one session.
type REPL struct {
	input       io.Reader
	output      io.Writer
	prompt      string
	exec        Executor
	history     *History
	completer   *Completer
	interactive bool
	log         logger.Logger
}

// New creates a REPL reading from stdin and writing to stdout. Line
// editing and completion activate only when stdin is a terminal.
func New(exec Executor, cfg Config) *REPL {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &REPL{
		input:       os.Stdin,
		output:      os.Stdout,
		prompt:      prompt,
		exec:        exec,
		history:     NewHistory(cfg.HistoryFile),
		completer:   NewCompleter(),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		log:         logger.Default(),
	}
}

// History exposes the session history, e.g. for saving on interrupt.
func (r *REPL) History() *History {
	return r.history
}

// Run starts the loop and blocks until the user quits, closes input or
// interrupts. History load/save failures are swallowed: persistence is
// best-effort and never disturbs the session.
func (r *REPL) Run() error {
	_ = r.history.Load()
	defer func() { _ = r.history.Save() }()

	if r.interactive {
		return r.runReadline()
	}
	return r.runPlain()
}

// runReadline is the interactive loop with editing, completion and
// in-memory history navigation.
func (r *REPL) runReadline() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            r.prompt,
		AutoComplete:      r.completer.Readline(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "",
		HistorySearchFold: true,
	})
	if err != nil {
		// Degrade to the plain loop rather than refuse the session.
		r.log.Warn("line editing unavailable", "error", err)
		return r.runPlain()
	}
	defer rl.Close()

	// Seed navigation with the persisted history.
	for _, entry := range r.history.Entries() {
		_ = rl.SaveHistory(entry)
	}

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history.Add(line)

		if isQuit(line) {
			return nil
		}

		r.dispatch(line)
	}
}

// runPlain is the fallback loop for piped input and dumb terminals.
func (r *REPL) runPlain() error {
	reader := bufio.NewReader(r.input)

	for {
		fmt.Fprint(r.output, r.prompt)

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// A final line without a trailing newline still executes.
			line = strings.TrimSpace(line)
			if line != "" {
				r.history.Add(line)
				if !isQuit(line) {
					r.dispatch(line)
				}
			}
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history.Add(line)

		if isQuit(line) {
			return nil
		}

		r.dispatch(line)
	}
}

// dispatch tokenizes one line, sends it and prints the rendered reply.
// Both tokenizer and execution failures are reported inline and leave
// the loop running; no reconnection is attempted after a transport
// error, so the next command may fail the same way.
func (r *REPL) dispatch(line string) {
	words, err := Tokenize(line)
	if err != nil {
		fmt.Fprintf(r.output, "(error) %v\n", err)
		return
	}
	if len(words) == 0 {
		return
	}

	name := strings.ToUpper(words[0])
	start := time.Now()

	v, err := r.exec.Execute(name, words[1:]...)
	if err != nil {
		fmt.Fprintf(r.output, "(error) %v\n", err)
		return
	}

	r.log.Debug("command executed",
		"command", name,
		"args", len(words)-1,
		"elapsed", time.Since(start))

	fmt.Fprintln(r.output, output.Format(v, 0))
}

// isQuit reports whether the line is a client-local quit command.
func isQuit(line string) bool {
	return strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit")
}
