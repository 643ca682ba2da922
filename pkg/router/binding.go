package router

import (
	"regexp"
	"strconv"
	"strings"
)

// AttributePrefix namespaces binding attributes per event type, e.g.
// on:click.
const AttributePrefix = "on:"

// AttributeFor returns the binding attribute name for an event type.
func AttributeFor(eventType string) string {
	return AttributePrefix + eventType
}

// EventTypeOf returns the event type of a binding attribute name and
// whether the name is a binding attribute at all.
func EventTypeOf(attrName string) (string, bool) {
	if !strings.HasPrefix(attrName, AttributePrefix) {
		return "", false
	}
	typ := attrName[len(AttributePrefix):]
	return typ, typ != ""
}

// Binding is a decomposed event binding marker.
type Binding struct {
	// Selector picks the target instance: empty for the nearest owning
	// component, #id for a document-wide lookup, anything else for the
	// nearest ancestor-or-self match.
	Selector string
	// Method names the handler on the resolved instance. Empty means the
	// binding is inert.
	Method string
	// Data is the parsed payload: a map[string]any for query payloads, a
	// coerced scalar for slash payloads, nil when absent.
	Data any
	// HasData distinguishes an absent payload from an empty one.
	HasData bool
}

// bindingPattern decomposes `[selector][/method][(/|?)data]`. The selector
// and method segments cannot contain delimiters; the data segment is the
// greedy trailing remainder after the last recognizable delimiter, so
// payloads may contain anything. A selector that itself contains `/` or
// `?` therefore misparses; that ambiguity is inherited from the attribute
// grammar and deliberately not fixed here.
var bindingPattern = regexp.MustCompile(`^([^/?]*)(?:/([^/?]*))?(?:([/?])(.*))?$`)

// ParseBinding decomposes a binding attribute value. The grammar is total:
// every string decomposes, possibly into an inert binding with no method.
func ParseBinding(value string) Binding {
	m := bindingPattern.FindStringSubmatch(value)
	if m == nil {
		return Binding{}
	}
	b := Binding{Selector: m[1], Method: m[2]}
	switch m[3] {
	case "?":
		b.Data = parseQuery(m[4])
		b.HasData = true
	case "/":
		b.Data = coerce(m[4])
		b.HasData = true
	}
	return b
}

// parseQuery parses a query-string payload into a map with individually
// coerced values. No percent-decoding is applied; the attribute value is
// taken literally.
func parseQuery(s string) map[string]any {
	out := make(map[string]any)
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		out[key] = coerce(value)
	}
	return out
}

// coerce converts payload strings to their natural type: booleans,
// integers, floats, else the string itself.
func coerce(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
