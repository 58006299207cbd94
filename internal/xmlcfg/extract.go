package xmlcfg

import (
	"strconv"
	"strings"
)

// extract is the single place implementing the leniency policy: string-read
// the element, try the parser, and silently fall back to the default when
// the element is absent, empty, or unparsable. Numeric mismatches surface as
// downstream consistency findings instead of hard errors here.
func extract[T any](n *Node, path string, parse func(string) (T, error), def T) T {
	raw := Text(n, path, "")
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

// Text returns the trimmed element text at path, or def when the element is
// absent or has no text.
func Text(n *Node, path, def string) string {
	el := n.Find(path)
	if el == nil {
		return def
	}
	if s := strings.TrimSpace(el.Text); s != "" {
		return s
	}
	return def
}

// Int returns the element text parsed as int, or def.
func Int(n *Node, path string, def int) int {
	return extract(n, path, strconv.Atoi, def)
}

// Float returns the element text parsed as float64, or def.
func Float(n *Node, path string, def float64) float64 {
	return extract(n, path, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}, def)
}

// Bool matches the element text case-insensitively against the accepted
// truthy set {"true","yes","1"}. Anything else, including absence, is false.
// The set is exact: existing configuration documents depend on it, so "on"
// and "enabled" stay false.
func Bool(n *Node, path string) bool {
	switch strings.ToLower(Text(n, path, "")) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// BioticMode is Bool plus the literal "biotic", which older configuration
// documents use for the biotic_mode flag.
func BioticMode(n *Node, path string) bool {
	if strings.EqualFold(Text(n, path, ""), "biotic") {
		return true
	}
	return Bool(n, path)
}

// Fields returns the whitespace-separated tokens of the element text.
// An absent or empty element yields a nil slice.
func Fields(n *Node, path string) []string {
	raw := Text(n, path, "")
	if raw == "" {
		return nil
	}
	return strings.Fields(raw)
}
