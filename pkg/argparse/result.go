package argparse

import "encoding/json"

// Binding records one bound argument: the descriptor name, the raw tokens it
// consumed (nil when the value came from a default), and the coerced value.
type Binding struct {
	Name  string
	Raw   []string
	Value any
}

// Result is a successful validation: the matched command tag plus the bound
// arguments in descriptor order.
type Result struct {
	Tag      string
	Bindings []Binding

	values map[string]any
}

func newResult(tag string, bindings []Binding) *Result {
	values := make(map[string]any, len(bindings))
	for _, b := range bindings {
		// Consecutive literal command words share the "prefix" name and
		// collapse into one space-joined value, as the original does.
		if prev, ok := values[b.Name].(string); ok {
			if cur, ok := b.Value.(string); ok {
				values[b.Name] = prev + " " + cur
				continue
			}
		}
		values[b.Name] = b.Value
	}
	return &Result{Tag: tag, Bindings: bindings, values: values}
}

// Value returns the coerced value bound under name.
func (r *Result) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Prefix returns the matched command words joined by spaces.
func (r *Result) Prefix() string {
	s, _ := r.values["prefix"].(string)
	return s
}

// Values returns a copy of the name-to-value mapping.
func (r *Result) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Tokens re-derives the validated token sequence in descriptor order.
// Default-filled bindings consumed no tokens and contribute none.
func (r *Result) Tokens() []string {
	var tokens []string
	for _, b := range r.Bindings {
		tokens = append(tokens, b.Raw...)
	}
	return tokens
}

// MarshalJSON renders the bound values as a JSON object.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.values)
}
