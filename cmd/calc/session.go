package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zephyrtronium/calculator"
)

// session evaluates lines of input and prints their results.
type session struct {
	eng  *calculator.Engine
	out  io.Writer
	log  zerolog.Logger
	verb string
	// prompt is printed before each line when interactive.
	prompt string
	// interactive enables the banner and prompts.
	interactive bool
	// echo prints the postfix form before each result.
	echo bool
}

// banner prints the greeting shown at the start of an interactive session.
func (s *session) banner() {
	var names []string
	for _, c := range s.eng.Constants() {
		names = append(names, c.Name)
	}
	fmt.Fprint(s.out, "\nScientific Calculator\n")
	fmt.Fprint(s.out, "====================\n")
	fmt.Fprint(s.out, "Available operations:\n")
	fmt.Fprint(s.out, "1. Basic arithmetic (+, -, *, /, ^)\n")
	fmt.Fprintf(s.out, "2. Constants: %s\n", strings.Join(names, ", "))
	fmt.Fprint(s.out, "Enter 'q' to quit\n\n")
}

// eval evaluates one expression and prints the result or the error. It
// reports whether evaluation succeeded.
func (s *session) eval(text string) bool {
	if s.echo {
		if post, err := s.eng.Postfix(text); err == nil {
			fmt.Fprintf(s.out, "%s : ", calculator.FormatTokens(post))
		}
	}
	r, err := s.eng.Compute(text)
	if err != nil {
		s.log.Debug().Str("expr", text).Err(err).Msg("expression failed")
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}
	fmt.Fprintf(s.out, "Result: "+s.verb+"\n", r)
	return true
}

// run reads lines from in until EOF or a line that is just q or Q. Errors in
// expressions are printed and do not stop the loop.
func (s *session) run(in io.Reader) error {
	if s.interactive {
		s.banner()
	}
	sc := bufio.NewScanner(in)
	for {
		if s.interactive {
			fmt.Fprint(s.out, s.prompt)
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "q", "Q":
			s.log.Debug().Msg("quit")
			return nil
		case "":
			continue
		}
		s.eval(line)
	}
	if s.interactive {
		// Finish the prompt line on EOF.
		fmt.Fprintln(s.out)
	}
	return sc.Err()
}
