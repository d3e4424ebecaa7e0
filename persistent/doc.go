// Package persistent implements the immutable collections EDN data is read into:
// lists, vectors and maps. No operation changes a value; new, independent values
// are derived from existing ones instead, so all of them are safe to share
// between goroutines.
//
// List and Vector follow Clojure's clojure.lang.PersistentList and
// PersistentVector. Map keys are compared with ==, which makes lang.Keyword,
// lang.Symbol, strings and ints natural keys.
package persistent
