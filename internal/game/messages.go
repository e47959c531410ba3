package game

import "fmt"

// Messages holds the text the loop prints. Echo takes the candidate as %d
// and Invalid takes the parse error as %v.
type Messages struct {
	Banner   string
	Prompt   string
	Echo     string
	TooSmall string
	TooBig   string
	Win      string
	Invalid  string
}

// DefaultMessages returns the stock English text.
func DefaultMessages() Messages {
	return Messages{
		Banner:   "Guess the number!",
		Prompt:   "Please input your guess.",
		Echo:     "You guessed: %d",
		TooSmall: "Too small!",
		TooBig:   "Too big!",
		Win:      "You win!",
		Invalid:  "Please type a number! (%v)",
	}
}

// WithDefaults fills empty fields from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	d := DefaultMessages()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&m.Banner, d.Banner)
	fill(&m.Prompt, d.Prompt)
	fill(&m.Echo, d.Echo)
	fill(&m.TooSmall, d.TooSmall)
	fill(&m.TooBig, d.TooBig)
	fill(&m.Win, d.Win)
	fill(&m.Invalid, d.Invalid)
	return m
}

// Verdict returns the message for an outcome.
func (m Messages) Verdict(o Outcome) string {
	switch o {
	case Less:
		return m.TooSmall
	case Greater:
		return m.TooBig
	default:
		return m.Win
	}
}

// Lines renders a turn as the lines the player sees: the parse error for a
// rejected line, otherwise the echo followed by the verdict.
func (m Messages) Lines(t Turn) []string {
	if !t.Accepted() {
		return []string{fmt.Sprintf(m.Invalid, t.Err)}
	}
	return []string{
		fmt.Sprintf(m.Echo, t.Candidate),
		m.Verdict(t.Outcome),
	}
}
