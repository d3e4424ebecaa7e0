// Package printer writes core data structures back as EDN text, so that reading
// the output gives back an equal value.
package printer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tcard/edn/lang"
	"github.com/tcard/edn/persistent"
)

// Fprint writes form to w in EDN format.
func Fprint(w io.Writer, form interface{}) error {
	bw := bufio.NewWriter(w)
	printForm(bw, form)
	return bw.Flush()
}

// Sprint returns form in EDN format.
func Sprint(form interface{}) string {
	var sb strings.Builder
	printForm(&sb, form)
	return sb.String()
}

type writer interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
}

func printForm(w writer, form interface{}) {
	switch f := form.(type) {
	case nil:
		w.WriteString("nil")
	case bool:
		w.WriteString(strconv.FormatBool(f))
	case int:
		w.WriteString(strconv.Itoa(f))
	case string:
		printString(w, f)
	case lang.Keyword:
		w.WriteString(f.String())
	case lang.Symbol:
		w.WriteString(f.String())
	case *persistent.List:
		printSeq(w, f.Seq(), "(", ")")
	case *persistent.Vector:
		printSeq(w, f.Seq(), "[", "]")
	case *persistent.Map:
		w.WriteByte('{')
		for i, k := range f.Keys() {
			if i > 0 {
				w.WriteString(", ")
			}
			v, _ := f.Get(k)
			printForm(w, k)
			w.WriteByte(' ')
			printForm(w, v)
		}
		w.WriteByte('}')
	default:
		fmt.Fprint(w, f)
	}
}

func printSeq(w writer, items []interface{}, start, end string) {
	w.WriteString(start)
	for i, x := range items {
		if i > 0 {
			w.WriteByte(' ')
		}
		printForm(w, x)
	}
	w.WriteString(end)
}

func printString(w writer, s string) {
	w.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			w.WriteByte('\\')
			w.WriteByte(c)
		case '\n':
			w.WriteString(`\n`)
		case '\t':
			w.WriteString(`\t`)
		case '\r':
			w.WriteString(`\r`)
		default:
			w.WriteByte(c)
		}
	}
	w.WriteByte('"')
}
