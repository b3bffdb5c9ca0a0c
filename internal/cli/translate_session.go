package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/padakosha/anuvada/internal/translator"
)

// TranslateSession manages the interactive translation loop: it prompts for
// English text, translates it, and prints the Kannada result until the user
// types exit or quit, or input ends.
type TranslateSession struct {
	translator   translator.Translator
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewTranslateSession creates a new TranslateSession reading from input and
// writing to output.
func NewTranslateSession(trans translator.Translator, input io.Reader, output io.Writer) *TranslateSession {
	return &TranslateSession{
		translator:   trans,
		stdinReader:  bufio.NewReader(input),
		stdoutWriter: output,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// PrintBanner writes the session header and usage hint.
func (session *TranslateSession) PrintBanner() {
	divider := strings.Repeat("=", 60)
	fmt.Fprintln(session.stdoutWriter, divider)
	fmt.Fprintln(session.stdoutWriter, "English → Kannada Translator")
	fmt.Fprintln(session.stdoutWriter, divider)
	_, _ = session.italic.Fprintln(session.stdoutWriter, "Type 'exit' to quit.")
}

// Session reads one line of English and prints its Kannada translation.
func (session *TranslateSession) Session(ctx context.Context) error {
	fmt.Fprint(session.stdoutWriter, "\nEnglish: ")
	line, err := session.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(session.stdoutWriter, "\nGoodbye!")
			return errEnd
		}
		return fmt.Errorf("error reading input: %w", err)
	}

	text := strings.TrimSpace(line)
	if text == "" {
		return nil
	}
	switch strings.ToLower(text) {
	case "exit", "quit":
		fmt.Fprintln(session.stdoutWriter, "Goodbye!")
		return errEnd
	}

	translated, err := session.translator.Translate(ctx, text)
	if err != nil {
		return fmt.Errorf("translator.Translate() > %w", err)
	}

	fmt.Fprint(session.stdoutWriter, "Kannada: ")
	_, _ = session.bold.Fprintln(session.stdoutWriter, translated)
	return nil
}
