package persistent

import (
	"fmt"
	"strings"
)

// A List is a singly linked list. The nil *List is the empty list.
type List struct {
	first interface{}
	rest  *List
	count int
}

func NewList(items ...interface{}) *List {
	var l *List
	for i := len(items) - 1; i >= 0; i-- {
		l = l.Cons(items[i])
	}
	return l
}

func (l *List) First() interface{} {
	if l == nil {
		return nil
	}
	return l.first
}

func (l *List) Next() *List {
	if l == nil {
		return nil
	}
	return l.rest
}

func (l *List) Cons(x interface{}) *List {
	return &List{x, l, l.Count() + 1}
}

func (l *List) Count() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Seq returns the list's items in order.
func (l *List) Seq() []interface{} {
	items := make([]interface{}, 0, l.Count())
	for ; l != nil; l = l.rest {
		items = append(items, l.first)
	}
	return items
}

func (l *List) String() string {
	return "(" + join(l.Seq(), " ") + ")"
}

func join(items []interface{}, sep string) string {
	var sb strings.Builder
	for i, x := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(sprint(x))
	}
	return sb.String()
}

func sprint(x interface{}) string {
	if x == nil {
		return "nil"
	}
	return fmt.Sprint(x)
}
