// Package reader reads EDN text, giving core data structures.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tcard/edn/lang"
	"github.com/tcard/edn/persistent"
)

// ErrSyntax is wrapped by every error caused by malformed input.
var ErrSyntax = errors.New("syntax error")

func syntaxErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrSyntax}, args...)...)
}

// Returns a GojureReader that reads text from source. If source is a bufio.Reader,
// it is guaranteed that only what is needed will be consumed from it.
func From(source io.Reader) GojureReader {
	bufr, ok := source.(*bufio.Reader)
	if !ok {
		bufr = bufio.NewReader(source)
	}
	return GojureReader{bufr}
}

// Returns a GojureReader that reads from a string of text.
func FromString(s string) GojureReader {
	return From(strings.NewReader(s))
}

// A GojureReader is bound to a source of EDN in text form.
type GojureReader struct {
	*bufio.Reader
}

// Reads the next form and gives its representation in core data structures.
// Lists will be *persistent.List, vectors *persistent.Vector and maps
// *persistent.Map. Symbols will be lang.Symbol and keywords lang.Keyword.
// Strings will be Go strings, numbers Go ints, and true, false and nil their Go
// counterparts.
//
// When there are no more forms, the error will be io.EOF. Input ending in the
// middle of a form gives io.ErrUnexpectedEOF.
func (r GojureReader) Read() (interface{}, error) {
	c, err := r.skipSpace()
	if err != nil {
		return nil, err
	}
	form, err := r.readForm(c)
	if err != nil {
		return nil, err
	}
	return form, nil
}

func (r GojureReader) readForm(c byte) (interface{}, error) {
	switch c {
	case '(':
		items, err := r.readCompound(')')
		if err != nil {
			return nil, err
		}
		return persistent.NewList(items...), nil
	case '[':
		items, err := r.readCompound(']')
		if err != nil {
			return nil, err
		}
		return persistent.NewVector(items...), nil
	case '{':
		m, err := r.readMap()
		if err != nil {
			return nil, err
		}
		return m, nil
	case '\'':
		quoted, err := r.Read()
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}
		return persistent.NewList(lang.Symbol{Name: "quote"}, quoted), nil
	case ')', ']', '}':
		return nil, syntaxErrorf("unmatched delimiter %q", c)
	default:
		r.UnreadByte()
		return r.readAtom()
	}
}

func (r GojureReader) readAtom() (interface{}, error) {
	c, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	r.UnreadByte()
	switch {
	case isDigit(c):
		return r.readInt()
	case c == '+' || c == '-':
		if next, err := r.Peek(2); err == nil && isDigit(next[1]) {
			return r.readInt()
		}
		return r.readSymbol()
	case c == ':':
		return r.readKeyword()
	case c == '"':
		return r.readString()
	default:
		sym, err := r.readSymbol()
		if err != nil {
			return nil, err
		}
		if sym.NS == "" {
			switch sym.Name {
			case "true":
				return true, nil
			case "false":
				return false, nil
			case "nil":
				return nil, nil
			}
		}
		return sym, nil
	}
}

func (r GojureReader) readInt() (int, error) {
	bys, err := r.readToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(bys)
	if err != nil {
		return 0, syntaxErrorf("bad number %q", bys)
	}
	return n, nil
}

func (r GojureReader) readString() (string, error) {
	if quo, err := r.ReadByte(); err != nil {
		return "", err
	} else if quo != '"' {
		return "", syntaxErrorf("not a string")
	}
	var sb strings.Builder
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		} else if err != nil {
			return "", err
		}
		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			esc, err := r.ReadByte()
			if err == io.EOF {
				return "", io.ErrUnexpectedEOF
			} else if err != nil {
				return "", err
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"', '\\':
				sb.WriteByte(esc)
			default:
				return "", syntaxErrorf("unsupported escape \\%c", esc)
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func symbolChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c) ||
		strings.IndexByte("*+!-_?=<>.&%$'#/", c) >= 0
}

// readToken reads symbol characters up to the first delimiter, which is left
// unread.
func (r GojureReader) readToken() (string, error) {
	bys := []byte{}
	c, err := r.ReadByte()
	for err == nil && symbolChar(c) {
		bys = append(bys, c)
		c, err = r.ReadByte()
	}
	if err != nil && err != io.EOF {
		return "", err
	} else if err == nil {
		if !isDelimiter(c) {
			return "", syntaxErrorf("unexpected character %q after %q", c, bys)
		}
		r.UnreadByte()
	}
	return string(bys), nil
}

func isDelimiter(c byte) bool {
	return isSpace(c) || strings.IndexByte("()[]{}\";", c) >= 0
}

// splitSymbol checks tok against the symbol rules and splits it into namespace
// and name.
func splitSymbol(tok string) (ns, name string, err error) {
	if tok == "" {
		return "", "", syntaxErrorf("empty symbol")
	}
	if tok == "/" {
		return "", "/", nil
	}
	if isDigit(tok[0]) {
		return "", "", syntaxErrorf("bad symbol %q, starting with a digit", tok)
	}
	switch i := strings.IndexByte(tok, '/'); {
	case i < 0:
		name = tok
	case strings.Count(tok, "/") > 1:
		return "", "", syntaxErrorf("bad symbol %q, more than one namespace separator", tok)
	case i == 0 || i == len(tok)-1:
		return "", "", syntaxErrorf("bad symbol %q, empty namespace or name", tok)
	default:
		ns, name = tok[:i], tok[i+1:]
	}
	if isDigit(name[0]) {
		return "", "", syntaxErrorf("bad symbol %q, name starting with a digit", tok)
	}
	if (name[0] == '+' || name[0] == '-' || name[0] == '.') && len(name) > 1 && isDigit(name[1]) {
		return "", "", syntaxErrorf("bad symbol %q, name looks like a number", tok)
	}
	return ns, name, nil
}

func (r GojureReader) readSymbol() (lang.Symbol, error) {
	c, err := r.ReadByte()
	if err != nil {
		return lang.Symbol{}, err
	}
	if !symbolChar(c) || c == '#' || c == '\'' {
		return lang.Symbol{}, syntaxErrorf("bad symbol, starting with %q", c)
	}
	r.UnreadByte()
	tok, err := r.readToken()
	if err != nil {
		return lang.Symbol{}, err
	}
	ns, name, err := splitSymbol(tok)
	if err != nil {
		return lang.Symbol{}, err
	}
	return lang.Symbol{NS: ns, Name: name}, nil
}

func (r GojureReader) readKeyword() (lang.Keyword, error) {
	if c, err := r.ReadByte(); err != nil {
		return lang.Keyword{}, err
	} else if c != ':' {
		return lang.Keyword{}, syntaxErrorf("not a keyword")
	}
	if next, err := r.Peek(1); err == nil && next[0] == ':' {
		return lang.Keyword{}, syntaxErrorf("auto-resolved keywords are not supported")
	}
	tok, err := r.readToken()
	if err != nil {
		return lang.Keyword{}, err
	}
	switch tok {
	case "":
		return lang.Keyword{}, syntaxErrorf("keyword without a name")
	case "/":
		return lang.Keyword{}, syntaxErrorf("bad keyword :/")
	}
	ns, name, err := splitSymbol(tok)
	if err != nil {
		return lang.Keyword{}, err
	}
	if ns == "" {
		return lang.NewKeyword(name), nil
	}
	return lang.NamespacedKeyword(name, ns), nil
}

func (r GojureReader) readMap() (*persistent.Map, error) {
	items, err := r.readCompound('}')
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, syntaxErrorf("map literal with %d forms, want an even number", len(items))
	}
	seen := make(map[interface{}]bool, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		// Compound keys are pointers, so only identical values clash.
		k := items[i]
		if seen[k] {
			return nil, syntaxErrorf("duplicate map key %v", k)
		}
		seen[k] = true
	}
	m, err := persistent.NewMap(items...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return m, nil
}

// Reads forms separated by whitespace until delim is met.
func (r GojureReader) readCompound(delim byte) ([]interface{}, error) {
	ret := []interface{}{}
	c, err := r.skipSpace()
	for err == nil && c != delim {
		var next interface{}
		next, err = r.readForm(c)
		if err != nil {
			return ret, err
		}
		ret = append(ret, next)
		c, err = r.skipSpace()
	}
	if err == io.EOF {
		return ret, io.ErrUnexpectedEOF
	}
	return ret, err
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', ',':
		return true
	}
	return false
}

// Skips whitespace and comments, returning the first byte after them.
func (r GojureReader) skipSpace() (byte, error) {
	for {
		c, err := r.ReadByte()
		if err != nil {
			return c, err
		}
		if c == ';' {
			if _, err := r.ReadString('\n'); err != nil {
				return 0, err
			}
			continue
		}
		if !isSpace(c) {
			return c, nil
		}
	}
}
