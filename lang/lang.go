// Package lang holds the identifier types that EDN data is made of: symbols and
// keywords.
package lang

// A Symbol names something. NS is empty for unqualified symbols.
type Symbol struct {
	NS   string
	Name string
}

func (s Symbol) String() string {
	if s.NS != "" {
		return s.NS + "/" + s.Name
	}
	return s.Name
}
