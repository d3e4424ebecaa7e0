package persistent

import "errors"

const (
	vectorNodeShift = 5
	vectorNodeLen   = 1 << vectorNodeShift
	vectorNodeMask  = vectorNodeLen - 1
)

var (
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrEmptyVector = errors.New("can't pop empty vector")
)

// A Vector is an indexed sequence. Items live in a trie of 32-wide nodes, except
// for the last up to 32 which live in tail, so appending is cheap.
type Vector struct {
	count int
	shift uint
	root  *vectorNode
	tail  []interface{}
}

// Inner nodes hold *vectorNode children; leaves hold items.
type vectorNode struct {
	items [vectorNodeLen]interface{}
}

var emptyVector = &Vector{0, vectorNodeShift, &vectorNode{}, []interface{}{}}

func NewVector(items ...interface{}) *Vector {
	ret := emptyVector
	for _, x := range items {
		ret = ret.Conj(x)
	}
	return ret
}

func (v *Vector) Count() int {
	return v.count
}

func (v *Vector) tailoff() int {
	if v.count < vectorNodeLen {
		return 0
	}
	return ((v.count - 1) >> vectorNodeShift) << vectorNodeShift
}

// leafFor returns the leaf items holding index i.
func (v *Vector) leafFor(i int) []interface{} {
	if i < 0 || i >= v.count {
		panic(ErrOutOfBounds)
	}
	if i >= v.tailoff() {
		return v.tail
	}
	n := v.root
	for level := v.shift; level > 0; level -= vectorNodeShift {
		n = n.items[(i>>level)&vectorNodeMask].(*vectorNode)
	}
	return n.items[:]
}

// Nth returns the item at index i. It panics with ErrOutOfBounds if there's none.
func (v *Vector) Nth(i int) interface{} {
	return v.leafFor(i)[i&vectorNodeMask]
}

// Assoc returns a vector with x at index i. i may be Count(), in which case x is
// appended.
func (v *Vector) Assoc(i int, x interface{}) *Vector {
	if i < 0 || i > v.count {
		panic(ErrOutOfBounds)
	}
	if i == v.count {
		return v.Conj(x)
	}
	if i >= v.tailoff() {
		newTail := make([]interface{}, len(v.tail))
		copy(newTail, v.tail)
		newTail[i&vectorNodeMask] = x
		return &Vector{v.count, v.shift, v.root, newTail}
	}
	return &Vector{v.count, v.shift, assocNode(v.shift, v.root, i, x), v.tail}
}

func assocNode(level uint, n *vectorNode, i int, x interface{}) *vectorNode {
	ret := *n
	if level == 0 {
		ret.items[i&vectorNodeMask] = x
	} else {
		sub := (i >> level) & vectorNodeMask
		ret.items[sub] = assocNode(level-vectorNodeShift, n.items[sub].(*vectorNode), i, x)
	}
	return &ret
}

// Conj returns a vector with x appended.
func (v *Vector) Conj(x interface{}) *Vector {
	if v.count-v.tailoff() < vectorNodeLen {
		newTail := make([]interface{}, len(v.tail)+1)
		copy(newTail, v.tail)
		newTail[len(v.tail)] = x
		return &Vector{v.count + 1, v.shift, v.root, newTail}
	}

	// Tail is full; push it into the trie.
	tailNode := &vectorNode{}
	copy(tailNode.items[:], v.tail)
	newShift := v.shift
	var newRoot *vectorNode
	if (v.count >> vectorNodeShift) > (1 << v.shift) {
		newRoot = &vectorNode{}
		newRoot.items[0] = v.root
		newRoot.items[1] = newPath(v.shift, tailNode)
		newShift += vectorNodeShift
	} else {
		newRoot = v.pushTail(v.shift, v.root, tailNode)
	}
	return &Vector{v.count + 1, newShift, newRoot, []interface{}{x}}
}

func (v *Vector) pushTail(level uint, parent, tailNode *vectorNode) *vectorNode {
	sub := ((v.count - 1) >> level) & vectorNodeMask
	ret := *parent
	if level == vectorNodeShift {
		ret.items[sub] = tailNode
	} else if child, ok := parent.items[sub].(*vectorNode); ok {
		ret.items[sub] = v.pushTail(level-vectorNodeShift, child, tailNode)
	} else {
		ret.items[sub] = newPath(level-vectorNodeShift, tailNode)
	}
	return &ret
}

func newPath(level uint, n *vectorNode) *vectorNode {
	if level == 0 {
		return n
	}
	ret := &vectorNode{}
	ret.items[0] = newPath(level-vectorNodeShift, n)
	return ret
}

// Pop returns the vector without its last item. It panics with ErrEmptyVector
// if there's none.
func (v *Vector) Pop() *Vector {
	switch {
	case v.count == 0:
		panic(ErrEmptyVector)
	case v.count == 1:
		return emptyVector
	case v.count-v.tailoff() > 1:
		newTail := make([]interface{}, len(v.tail)-1)
		copy(newTail, v.tail)
		return &Vector{v.count - 1, v.shift, v.root, newTail}
	}

	// The tail empties out; the rightmost leaf becomes the new tail.
	newTail := v.leafFor(v.count - 2)
	newRoot := v.popTail(v.shift, v.root)
	newShift := v.shift
	if newRoot == nil {
		newRoot = &vectorNode{}
	}
	if v.shift > vectorNodeShift && newRoot.items[1] == nil {
		newRoot = newRoot.items[0].(*vectorNode)
		newShift -= vectorNodeShift
	}
	return &Vector{v.count - 1, newShift, newRoot, append([]interface{}(nil), newTail...)}
}

func (v *Vector) popTail(level uint, n *vectorNode) *vectorNode {
	sub := ((v.count - 2) >> level) & vectorNodeMask
	if level > vectorNodeShift {
		child := v.popTail(level-vectorNodeShift, n.items[sub].(*vectorNode))
		if child == nil && sub == 0 {
			return nil
		}
		ret := *n
		if child == nil {
			ret.items[sub] = nil
		} else {
			ret.items[sub] = child
		}
		return &ret
	}
	if sub == 0 {
		return nil
	}
	ret := *n
	ret.items[sub] = nil
	return &ret
}

// Seq returns the vector's items in order.
func (v *Vector) Seq() []interface{} {
	items := make([]interface{}, 0, v.count)
	for i := 0; i < v.count; i += vectorNodeLen {
		items = append(items, v.leafFor(i)...)
	}
	return items[:v.count]
}

func (v *Vector) String() string {
	return "[" + join(v.Seq(), " ") + "]"
}
