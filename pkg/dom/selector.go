package dom

import "strings"

// attrMatch matches [name] or [name=value].
type attrMatch struct {
	name     string
	value    string
	hasValue bool
}

// compound is a parsed compound simple selector: tag#id.class[attr=value].
type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
}

// parseSelector parses a compound simple selector. Combinators are not
// supported; ok is false for anything unparsable.
func parseSelector(s string) (compound, bool) {
	var c compound
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " >+~,") {
		return c, false
	}
	i := 0
	// Leading tag name.
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	c.tag = strings.ToLower(s[:i])
	for i < len(s) {
		switch s[i] {
		case '#':
			j := i + 1
			for j < len(s) && isNameByte(s[j]) {
				j++
			}
			if j == i+1 {
				return c, false
			}
			c.id = s[i+1 : j]
			i = j
		case '.':
			j := i + 1
			for j < len(s) && isNameByte(s[j]) {
				j++
			}
			if j == i+1 {
				return c, false
			}
			c.classes = append(c.classes, s[i+1:j])
			i = j
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return c, false
			}
			body := s[i+1 : i+j]
			i += j + 1
			var m attrMatch
			if eq := strings.IndexByte(body, '='); eq >= 0 {
				m.name = strings.ToLower(body[:eq])
				m.value = strings.Trim(body[eq+1:], `"'`)
				m.hasValue = true
			} else {
				m.name = strings.ToLower(body)
			}
			if m.name == "" {
				return c, false
			}
			c.attrs = append(c.attrs, m)
		default:
			return c, false
		}
	}
	if c.tag == "" && c.id == "" && len(c.classes) == 0 && len(c.attrs) == 0 {
		return c, false
	}
	return c, true
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' || b == '-' || b == '_' || b == ':'
}

func (c compound) matches(e *Element) bool {
	if e.isShadow {
		return false
	}
	if c.tag != "" && c.tag != e.tag {
		return false
	}
	if c.id != "" && c.id != e.ID() {
		return false
	}
	if len(c.classes) > 0 {
		have := strings.Fields(e.GetAttribute("class"))
		for _, want := range c.classes {
			found := false
			for _, cls := range have {
				if cls == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	for _, m := range c.attrs {
		v, ok := e.Attr(m.name)
		if !ok || (m.hasValue && v != m.value) {
			return false
		}
	}
	return true
}

// Matches reports whether the element matches the compound simple
// selector. Unparsable selectors match nothing.
func (e *Element) Matches(selector string) bool {
	c, ok := parseSelector(selector)
	return ok && c.matches(e)
}

// Closest returns the nearest ancestor-or-self matching the selector,
// walking parent links without crossing shadow boundaries. Returns nil
// when nothing matches.
func (e *Element) Closest(selector string) *Element {
	c, ok := parseSelector(selector)
	if !ok {
		return nil
	}
	for cur := e; cur != nil; cur = cur.parent {
		if c.matches(cur) {
			return cur
		}
	}
	return nil
}

// QueryAll returns the element's descendants matching the selector in tree
// order, not descending into templates or shadow roots. The element itself
// is not considered.
func (e *Element) QueryAll(selector string) []*Element {
	c, ok := parseSelector(selector)
	if !ok {
		return nil
	}
	var out []*Element
	if e.tag == "template" {
		return nil
	}
	for _, child := range e.children {
		walkLight(child, func(el *Element) bool {
			if c.matches(el) {
				out = append(out, el)
			}
			return true
		})
	}
	return out
}
