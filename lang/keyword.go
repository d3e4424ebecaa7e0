package lang

// Keyword is just like Clojure's keyword: a name with an optional namespace,
// printed as :name or :namespace/name.
//
// Keywords are values. Two keywords are equal, with == or Equal, iff their names
// match, and either both lack a namespace or both have the same one. Keyword is
// comparable, so it works as a map key.
//
// No validation is done here. Callers are expected to follow the symbol rules at
// https://clojure.org/reference/reader#_symbols; the reader package does.
type Keyword struct {
	name      string
	ns        string
	qualified bool
}

// NewKeyword returns the unqualified keyword :name.
func NewKeyword(name string) Keyword {
	return Keyword{name: name}
}

// NamespacedKeyword returns the keyword :namespace/name. An empty namespace is
// still a namespace: NamespacedKeyword("a", "") is :/a, not :a.
func NamespacedKeyword(name, namespace string) Keyword {
	return Keyword{name: name, ns: namespace, qualified: true}
}

func (k Keyword) Name() string {
	return k.name
}

// Namespace returns the keyword's namespace, and whether it has one.
func (k Keyword) Namespace() (string, bool) {
	return k.ns, k.qualified
}

func (k Keyword) Equal(other Keyword) bool {
	return k == other
}

// String prints the keyword in EDN format. Nothing is escaped.
func (k Keyword) String() string {
	if k.qualified {
		return ":" + k.ns + "/" + k.name
	}
	return ":" + k.name
}
