// SPDX-License-Identifier: MIT
// File: session.go
// Role: Line-oriented interactive command loop.

package dispatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Session commands.
const (
	cmdBridge   = "bridge"
	cmdPath     = "path"
	cmdRandom   = "random"
	cmdGenerate = "generate"
	cmdShow     = "show"
	cmdHelp     = "help"
	cmdQuit     = "quit"
)

const helpText = `Commands:
  bridge [word1 word2]   query bridge words
  path [word1 word2]     shortest path between two words
  random                 random walk
  generate [text]        insert bridge words into new text
  show                   print the graph
  help                   show this help
  quit                   exit
`

// Session is an interactive command loop reading one command per line.
// Missing arguments are asked for on the following lines.
type Session struct {
	d      *Dispatcher
	in     *bufio.Scanner
	out    io.Writer
	prompt bool
}

// NewSession returns a Session reading from in and writing to out.
// Prompts are printed only when prompt is true.
func NewSession(d *Dispatcher, in io.Reader, out io.Writer, prompt bool) *Session {
	return &Session{d: d, in: bufio.NewScanner(in), out: out, prompt: prompt}
}

// Run processes commands until quit, end of input, or ctx cancellation.
// Cancellation is observed between commands.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprint(s.out, helpText)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := s.ask("> ")
		if !ok {
			return s.in.Err()
		}
		// Only the command word is trimmed; generate needs rest verbatim.
		cmd, rest, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
		if cmd = strings.TrimSpace(cmd); cmd == "" {
			continue
		}
		if quit := s.exec(cmd, rest); quit {
			return nil
		}
	}
}

// exec runs one command; it reports whether the session should end.
func (s *Session) exec(cmd, rest string) bool {
	switch cmd {
	case cmdBridge, cmdPath:
		w1, w2, ok := s.twoWords(rest)
		if !ok {
			return true
		}
		if cmd == cmdBridge {
			fmt.Fprintln(s.out, s.d.Bridge(w1, w2))
		} else {
			fmt.Fprintln(s.out, s.d.Path(w1, w2))
		}
	case cmdRandom:
		fmt.Fprintln(s.out, s.d.Walk())
	case cmdGenerate:
		phrase := rest
		if phrase == "" {
			var ok bool
			if phrase, ok = s.ask("text: "); !ok {
				return true
			}
		}
		fmt.Fprintln(s.out, s.d.Generate(phrase))
	case cmdShow:
		if err := s.d.Show(s.out); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	case cmdHelp:
		fmt.Fprint(s.out, helpText)
	case cmdQuit:
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s\n", cmd)
		fmt.Fprint(s.out, helpText)
	}
	return false
}

// twoWords takes the first two fields of rest and asks for any missing one.
func (s *Session) twoWords(rest string) (string, string, bool) {
	fields := strings.Fields(rest)
	labels := []string{"first word: ", "second word: "}
	for len(fields) < 2 {
		line, ok := s.ask(labels[len(fields)])
		if !ok {
			return "", "", false
		}
		fields = append(fields, strings.Fields(line)...)
	}
	return fields[0], fields[1], true
}

// ask prints label (in prompt mode) and reads the next line.
func (s *Session) ask(label string) (string, bool) {
	if s.prompt {
		fmt.Fprint(s.out, label)
	}
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
