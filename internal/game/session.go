package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrSessionOver is set on a Turn submitted after the secret was found.
var ErrSessionOver = errors.New("session is over")

// Turn is the result of submitting one line. Either Err is set, or
// Candidate and Outcome describe an accepted guess.
type Turn struct {
	Candidate int
	Outcome   Outcome
	Err       error
}

// Accepted reports whether the line was a valid guess.
func (t Turn) Accepted() bool {
	return t.Err == nil
}

// Won reports whether this turn found the secret.
func (t Turn) Won() bool {
	return t.Err == nil && t.Outcome == Equal
}

// Summary describes a session for logging. It is never persisted.
type Summary struct {
	SessionID string
	Range     Range
	Guesses   int
	Rejected  int
	Won       bool
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Summary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("session", s.SessionID)
	enc.AddString("range", s.Range.String())
	enc.AddInt("guesses", s.Guesses)
	enc.AddInt("rejected", s.Rejected)
	enc.AddBool("won", s.Won)
	return nil
}

// Session owns one secret and tracks the guesses made against it.
// It is not safe for concurrent use.
type Session struct {
	id       string
	rng      Range
	secret   int
	guesses  int
	rejected int
	done     bool
	log      *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger. Sessions log nothing by default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession validates r and draws the secret from src. This is the only
// draw the session makes.
func NewSession(src Source, r Range, opts ...Option) (*Session, error) {
	if src == nil {
		return nil, errors.New("game: nil source")
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid range: %w", err)
	}

	s := &Session{
		id:  uuid.NewString(),
		rng: r,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.secret = DrawSecret(src, r)
	s.log = s.log.With(zap.String("session", s.id))
	s.log.Debug("session started", zap.Stringer("range", r))
	return s, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Range returns the range the secret was drawn from.
func (s *Session) Range() Range {
	return s.rng
}

// Done reports whether the secret has been found.
func (s *Session) Done() bool {
	return s.done
}

// Guesses returns the number of accepted guesses so far.
func (s *Session) Guesses() int {
	return s.guesses
}

// Submit parses line and compares it with the secret. Malformed lines are
// returned as a Turn with a *ParseError and do not count as a guess.
func (s *Session) Submit(line string) Turn {
	var turn Turn
	if s.done {
		turn.Err = ErrSessionOver
		return turn
	}

	candidate, err := ParseCandidate(line)
	if err != nil {
		s.rejected++
		turn.Err = err
		s.log.Debug("guess rejected", zap.Error(err))
		return turn
	}

	s.guesses++
	turn.Candidate = candidate
	turn.Outcome = Compare(candidate, s.secret)
	if turn.Outcome == Equal {
		s.done = true
	}
	s.log.Debug("guess",
		zap.Int("candidate", candidate),
		zap.Stringer("outcome", turn.Outcome),
		zap.Int("attempt", s.guesses))
	return turn
}

// Summary snapshots the session counters.
func (s *Session) Summary() Summary {
	return Summary{
		SessionID: s.id,
		Range:     s.rng,
		Guesses:   s.guesses,
		Rejected:  s.rejected,
		Won:       s.done,
	}
}
