package session

import "strconv"

// Form is an immutable set of labelled text fields with a focused cursor.
// Every editing method returns a new Form.
type Form struct {
	labels []string
	fields []string
	cursor int
}

func newForm(labels []string) Form {
	return Form{labels: labels, fields: make([]string, len(labels))}
}

func (f Form) Len() int { return len(f.fields) }

func (f Form) Cursor() int { return f.cursor }

// Fields returns a copy of the field contents.
func (f Form) Fields() []string {
	return append([]string(nil), f.fields...)
}

func (f Form) Labels() []string {
	return append([]string(nil), f.labels...)
}

func (f Form) withFields(fields []string) Form {
	return Form{labels: f.labels, fields: fields, cursor: f.cursor}
}

// Insert appends r to the focused field. Runes outside 0-9, '-' and '.' are
// ignored.
func (f Form) Insert(r rune) Form {
	if !isFieldRune(r) {
		return f
	}
	fields := f.Fields()
	fields[f.cursor] += string(r)
	return f.withFields(fields)
}

// Backspace drops the last byte of the focused field. Fields hold ASCII only.
func (f Form) Backspace() Form {
	current := f.fields[f.cursor]
	if current == "" {
		return f
	}
	fields := f.Fields()
	fields[f.cursor] = current[:len(current)-1]
	return f.withFields(fields)
}

func (f Form) Left() Form {
	next := f.withFields(f.fields)
	if next.cursor > 0 {
		next.cursor--
	}
	return next
}

func (f Form) Right() Form {
	next := f.withFields(f.fields)
	if next.cursor < len(next.fields)-1 {
		next.cursor++
	}
	return next
}

// Values parses every field as a float64. ok is false if any field fails.
func (f Form) Values() (values []float64, ok bool) {
	values = make([]float64, len(f.fields))
	for i, field := range f.fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

func isFieldRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '.'
}
