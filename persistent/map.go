package persistent

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrOddMapArgs      = errors.New("map needs an even number of keys and values")
	ErrUncomparableKey = errors.New("map key is not comparable")
)

// A Map associates keys with values, remembering the order keys were first
// added in. Keys are compared with ==.
//
// Updates copy the whole map, which is fine for the small literal maps EDN
// documents are made of.
type Map struct {
	keys []interface{}
	vals map[interface{}]interface{}
}

var emptyMap = &Map{vals: map[interface{}]interface{}{}}

// NewMap builds a map from alternating keys and values. Later values win over
// earlier ones for the same key.
func NewMap(kvs ...interface{}) (*Map, error) {
	if len(kvs)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddMapArgs, len(kvs))
	}
	m := &Map{vals: make(map[interface{}]interface{}, len(kvs)/2)}
	for i := 0; i < len(kvs); i += 2 {
		k := kvs[i]
		if !isComparable(k) {
			return nil, fmt.Errorf("%w: %T", ErrUncomparableKey, k)
		}
		if _, ok := m.vals[k]; !ok {
			m.keys = append(m.keys, k)
		}
		m.vals[k] = kvs[i+1]
	}
	return m, nil
}

func isComparable(k interface{}) bool {
	return k == nil || reflect.TypeOf(k).Comparable()
}

func (m *Map) Count() int {
	return len(m.keys)
}

func (m *Map) Get(k interface{}) (interface{}, bool) {
	if !isComparable(k) {
		return nil, false
	}
	v, ok := m.vals[k]
	return v, ok
}

func (m *Map) Contains(k interface{}) bool {
	_, ok := m.Get(k)
	return ok
}

// Assoc returns a map with k set to v. It panics with ErrUncomparableKey if k
// can't be a key.
func (m *Map) Assoc(k, v interface{}) *Map {
	if !isComparable(k) {
		panic(fmt.Errorf("%w: %T", ErrUncomparableKey, k))
	}
	ret := m.clone(1)
	if _, ok := ret.vals[k]; !ok {
		ret.keys = append(ret.keys, k)
	}
	ret.vals[k] = v
	return ret
}

// Dissoc returns a map without k.
func (m *Map) Dissoc(k interface{}) *Map {
	if !m.Contains(k) {
		return m
	}
	if m.Count() == 1 {
		return emptyMap
	}
	ret := &Map{
		keys: make([]interface{}, 0, len(m.keys)-1),
		vals: make(map[interface{}]interface{}, len(m.vals)-1),
	}
	for _, mk := range m.keys {
		if mk != k {
			ret.keys = append(ret.keys, mk)
			ret.vals[mk] = m.vals[mk]
		}
	}
	return ret
}

// Keys returns the map's keys in insertion order.
func (m *Map) Keys() []interface{} {
	return append([]interface{}(nil), m.keys...)
}

func (m *Map) clone(extra int) *Map {
	ret := &Map{
		keys: make([]interface{}, len(m.keys), len(m.keys)+extra),
		vals: make(map[interface{}]interface{}, len(m.vals)+extra),
	}
	copy(ret.keys, m.keys)
	for k, v := range m.vals {
		ret.vals[k] = v
	}
	return ret
}

func (m *Map) String() string {
	entries := make([]string, len(m.keys))
	for i, k := range m.keys {
		entries[i] = sprint(k) + " " + sprint(m.vals[k])
	}
	return "{" + strings.Join(entries, ", ") + "}"
}
