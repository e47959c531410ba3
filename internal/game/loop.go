package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ErrInputClosed is returned when input ends before the secret is found.
// It is fatal to the session.
var ErrInputClosed = errors.New("input closed before the number was guessed")

// Loop drives a Session over a line-oriented reader and writer.
type Loop struct {
	session *Session
	in      *bufio.Reader
	out     io.Writer
	msgs    Messages
	log     *zap.Logger
}

// NewLoop wires a session to its input and output. Empty message fields
// fall back to DefaultMessages; a nil logger discards.
func NewLoop(session *Session, in io.Reader, out io.Writer, msgs Messages, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		session: session,
		in:      bufio.NewReader(in),
		out:     out,
		msgs:    msgs.WithDefaults(),
		log:     log.With(zap.String("session", session.ID())),
	}
}

// Run prints the banner and then prompts, reads and reports until the
// secret is guessed. It blocks on the reader between prompts.
func (l *Loop) Run() (Summary, error) {
	fmt.Fprintln(l.out, l.msgs.Banner)

	for !l.session.Done() {
		fmt.Fprintln(l.out, l.msgs.Prompt)

		line, err := l.readLine()
		if err != nil {
			l.log.Warn("session ended without a win", zap.Error(err))
			return l.session.Summary(), err
		}

		turn := l.session.Submit(line)
		for _, msg := range l.msgs.Lines(turn) {
			fmt.Fprintln(l.out, msg)
		}
	}

	summary := l.session.Summary()
	l.log.Info("session won", zap.Int("guesses", summary.Guesses))
	return summary, nil
}

// readLine returns the next line. A final line without a trailing newline
// is still returned; only an exhausted reader is ErrInputClosed.
func (l *Loop) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("read guess: %w", err)
}
