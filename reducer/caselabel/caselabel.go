// Package caselabel renders best-effort, human-readable labels for sum
// type values, for inclusion in diagnostics. A three-case sum with a
// nested payload renders along the lines of "Outer.child(field: value)".
//
// Sum types that implement Labeler get exact, compile-time-checked
// rendering through the Label builder. Everything else falls through to
// reflection, which degrades to an empty string rather than failing.
package caselabel

import (
	"fmt"
	"reflect"
	"strings"
)

// Labeler is implemented by sum types able to describe their current case.
// Variants typically build their label with Case or CaseOf.
type Labeler interface {
	CaseLabel() Label
}

// Label is a rendered-on-demand description of one case of a sum value.
type Label struct {
	sum     string
	variant string
	payload []Field
}

// Field is one associated value of a case. A Field with no name renders
// positionally as "_: value".
type Field struct {
	name  string
	value any
}

// Case builds a label for a bare case name, e.g. "Tapped".
func Case(variant string) Label {
	return Label{variant: variant}
}

// CaseOf builds a label qualified by its sum type name, e.g. "Outer.child".
func CaseOf(sum, variant string) Label {
	return Label{sum: sum, variant: variant}
}

// With attaches associated values to the case.
func (l Label) With(fields ...Field) Label {
	l.payload = fields
	return l
}

// Labeled builds a named associated value, rendered as "name: value".
func Labeled(name string, value any) Field {
	return Field{name: name, value: value}
}

// Positional builds an unlabeled associated value, rendered as "_: value".
func Positional(value any) Field {
	return Field{value: value}
}

// String renders the label, e.g. "Outer.child(.tapped)" or "Case(_: 5)".
func (l Label) String() string {
	return l.render(false)
}

func (l Label) render(nested bool) string {
	var b strings.Builder
	switch {
	case nested:
		// nested cases render relative to their enclosing sum
		b.WriteString(".")
	case l.sum != "":
		b.WriteString(l.sum)
		b.WriteString(".")
	}
	b.WriteString(l.variant)
	if len(l.payload) == 0 {
		return b.String()
	}
	parts := make([]string, len(l.payload))
	for i, f := range l.payload {
		parts[i] = f.render()
	}
	b.WriteString("(")
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(")")
	return b.String()
}

func (f Field) render() string {
	if inner, ok := labelOf(f.value); ok {
		rendered := inner.render(true)
		if f.name == "" {
			return rendered
		}
		return f.name + ": " + rendered
	}
	name := f.name
	if name == "" {
		name = "_"
	}
	return name + ": " + fmt.Sprintf("%v", f.value)
}

func labelOf(v any) (label Label, ok bool) {
	switch val := v.(type) {
	case Label:
		return val, true
	case Labeler:
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		return val.CaseLabel(), true
	default:
		return Label{}, false
	}
}

// Render produces a label for an arbitrary value. Values implementing
// Labeler render through their own label; others are reflected over,
// rendering the dynamic type name plus exported struct fields. Render
// never fails: unreadable values degrade to an empty string.
func Render(v any) string {
	if v == nil {
		return ""
	}
	if l, ok := labelOf(v); ok {
		return l.String()
	}
	return reflectLabel(v)
}

func reflectLabel(v any) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	t := rv.Type()
	if t.Name() == "" {
		return ""
	}
	if rv.Kind() == reflect.String {
		// string-backed enums carry their tag in the value
		return rv.String()
	}
	if rv.Kind() != reflect.Struct {
		return t.Name()
	}
	var fields []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			// value unreadable without unsafe; keep the positional slot
			fields = append(fields, "_")
			continue
		}
		fields = append(fields, f.Name+": "+fmt.Sprintf("%v", rv.Field(i).Interface()))
	}
	if len(fields) == 0 {
		return t.Name()
	}
	return t.Name() + "(" + strings.Join(fields, ", ") + ")"
}
