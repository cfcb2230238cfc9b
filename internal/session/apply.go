package session

import "github.com/csheth/spltui/internal/solver"

// KeyKind is the terminal-independent kind of a key event.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyRune
	KeyBackspace
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
	KeyInterrupt
)

// Key is a single key event. Rune is only meaningful for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

func RuneKey(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

func isQuit(k Key) bool {
	return k.Kind == KeyInterrupt || (k.Kind == KeyRune && (k.Rune == 'q' || k.Rune == 'Q'))
}

// Apply returns the screen that follows s when key is pressed. Keys that do
// not apply to s return s unchanged.
func Apply(s Screen, key Key) Screen {
	if IsTerminated(s) {
		return s
	}
	if isQuit(key) {
		return Terminated{}
	}
	switch cur := s.(type) {
	case Menu:
		return applyMenu(cur, key)
	case OneVarForm:
		next, submitted := applyForm(cur.Form, key, submitOneVar)
		if submitted != nil {
			return submitted
		}
		if next == nil {
			return NewMenu()
		}
		return OneVarForm{Form: *next}
	case TwoVarForm:
		next, submitted := applyForm(cur.Form, key, submitTwoVar)
		if submitted != nil {
			return submitted
		}
		if next == nil {
			return NewMenu()
		}
		return TwoVarForm{Form: *next}
	case Result:
		if key.Kind == KeyEsc {
			return NewMenu()
		}
		return cur
	default:
		return s
	}
}

func applyMenu(m Menu, key Key) Screen {
	if key.Kind != KeyRune {
		return m
	}
	switch key.Rune {
	case '1':
		return NewOneVarForm()
	case '2':
		return NewTwoVarForm()
	default:
		return m
	}
}

// applyForm handles the editing keys shared by both forms. It returns the
// edited form, or a result screen on submit, or (nil, nil) when the form is
// abandoned with Esc.
func applyForm(f Form, key Key, submit func([]float64) string) (*Form, Screen) {
	var next Form
	switch key.Kind {
	case KeyRune:
		next = f.Insert(key.Rune)
	case KeyBackspace:
		next = f.Backspace()
	case KeyLeft:
		next = f.Left()
	case KeyRight:
		next = f.Right()
	case KeyEnter:
		values, ok := f.Values()
		if !ok {
			return nil, NewResult(InvalidInputMessage)
		}
		return nil, NewResult(submit(values))
	case KeyEsc:
		return nil, nil
	default:
		next = f
	}
	return &next, nil
}

func submitOneVar(v []float64) string {
	return solver.SolveOneVar(v[0], v[1]).Text()
}

func submitTwoVar(v []float64) string {
	return solver.SolveTwoVar(v[0], v[1], v[2], v[3], v[4], v[5]).Text()
}
