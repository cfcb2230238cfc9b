// Package session holds the navigation state machine of the solver form.
//
// A session is always on exactly one Screen. Apply maps the current screen and
// a key to the next screen without mutating its input, so every transition is
// atomic from the caller's point of view.
package session

const (
	// InvalidInputMessage replaces the narration when a field does not parse.
	InvalidInputMessage = "Invalid input: every field must be a number."
	// InfoMessage is shown when the session starts on the info screen.
	InfoMessage = "SPLTUI solves linear equation systems step by step.\n\n" +
		"[1] SPLSV: one variable, ax + b = 0\n" +
		"[2] SPLDV: two variables, a1x + b1y = c1 and a2x + b2y = c2\n\n" +
		"Press Esc to open the menu."
)

var (
	oneVarLabels = []string{"a", "b"}
	twoVarLabels = []string{"a1", "b1", "c1", "a2", "b2", "c2"}
)

// Screen is one mutually exclusive mode of the session.
type Screen interface {
	screen()
}

// Menu lets the user pick a mode.
type Menu struct{}

// OneVarForm collects a and b for a·x + b = 0.
type OneVarForm struct {
	Form
}

// TwoVarForm collects a1, b1, c1, a2, b2, c2.
type TwoVarForm struct {
	Form
}

// Result holds the narration of a submitted form, or an error message.
type Result struct {
	Text string
}

// Terminated absorbs every key.
type Terminated struct{}

func (Menu) screen()       {}
func (OneVarForm) screen() {}
func (TwoVarForm) screen() {}
func (Result) screen()     {}
func (Terminated) screen() {}

func NewMenu() Screen { return Menu{} }

func NewOneVarForm() Screen { return OneVarForm{Form: newForm(oneVarLabels)} }

func NewTwoVarForm() Screen { return TwoVarForm{Form: newForm(twoVarLabels)} }

func NewResult(text string) Screen { return Result{Text: text} }

// Start selects the first screen of a session.
type Start string

const (
	StartMenu   Start = "menu"
	StartOneVar Start = "splsv"
	StartTwoVar Start = "spldv"
	StartInfo   Start = "info"
)

// Initial returns the first screen for the given start option. Unknown values
// fall back to the menu.
func Initial(start Start) Screen {
	switch start {
	case StartOneVar:
		return NewOneVarForm()
	case StartTwoVar:
		return NewTwoVarForm()
	case StartInfo:
		return NewResult(InfoMessage)
	default:
		return NewMenu()
	}
}

func IsTerminated(s Screen) bool {
	_, ok := s.(Terminated)
	return ok
}

// Name returns a stable identifier for logs.
func Name(s Screen) string {
	switch s.(type) {
	case Menu:
		return "menu"
	case OneVarForm:
		return "splsv"
	case TwoVarForm:
		return "spldv"
	case Result:
		return "result"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
