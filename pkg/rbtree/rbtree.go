package rbtree

import (
	"golang.org/x/exp/constraints"
)

const (
	RED   = 0
	BLACK = 1
)

// Compare is a natural-order comparator for any ordered key type. It
// can be handed straight to NewTree when the key's built-in ordering
// is the ordering you want.
func Compare[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	}
	if a > b {
		return +1
	}
	return 0
}

type node[K any, V any] struct {
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
	color  uint
	key    K
	value  V
}

// Tree is an ordered map backed by a red-black tree. Keys are kept in
// the ascending order defined by the comparator supplied to NewTree.
// The comparator must be consistent (a strict-weak ordering); an
// inconsistent comparator corrupts the tree and is not checked for.
// A Tree is not safe for concurrent use.
type Tree[K any, V any] struct {
	NIL     *node[K, V]
	root    *node[K, V]
	count   int
	compare func(a, b K) int
}

// NewTree creates and returns an empty Tree ordered by compare. The
// comparator must return a negative value when a sorts before b, a
// positive value when a sorts after b, and zero when the two are
// equal; only the sign is significant.
func NewTree[K any, V any](compare func(a, b K) int) *Tree[K, V] {
	n := &node[K, V]{
		left:   nil,
		right:  nil,
		parent: nil,
		color:  BLACK,
	}
	return &Tree[K, V]{
		NIL:     n,
		root:    n,
		count:   0,
		compare: compare,
	}
}

// Put maps key to val. If the key is already present its value is
// replaced in place and the previous value is returned along with
// true; the tree is not re-balanced in that case because the keys
// have not changed.
func (t *Tree[K, V]) Put(key K, val V) (V, bool) {
	ret, existed := t.insert(&node[K, V]{
		left:   t.NIL,
		right:  t.NIL,
		parent: t.NIL,
		color:  RED,
		key:    key,
		value:  val,
	})
	return ret, existed
}

// Get returns the value mapped to key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	x := t.search(key)
	if x == t.NIL {
		var zero V
		return zero, false
	}
	return x.value, true
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	return t.search(key) != t.NIL
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	x := t.min(t.root)
	if x == t.NIL {
		var zk K
		var zv V
		return zk, zv, false
	}
	return x.key, x.value, true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, bool) {
	x := t.max(t.root)
	if x == t.NIL {
		var zk K
		var zv V
		return zk, zv, false
	}
	return x.key, x.value, true
}

// Iterator is called for each entry during a scan. Returning false
// stops the scan early.
type Iterator[K any, V any] func(key K, val V) bool

// ScanFront visits every entry in ascending key order.
func (t *Tree[K, V]) ScanFront(iter Iterator[K, V]) {
	t.ascend(t.root, iter)
}

// ScanBack visits every entry in descending key order.
func (t *Tree[K, V]) ScanBack(iter Iterator[K, V]) {
	t.descend(t.root, iter)
}

// Ascend visits, in ascending order, every entry with a key greater
// than or equal to pivot.
func (t *Tree[K, V]) Ascend(pivot K, iter Iterator[K, V]) {
	t.ascendFrom(t.root, pivot, iter)
}

func (t *Tree[K, V]) insert(z *node[K, V]) (V, bool) {
	x := t.root
	y := t.NIL
	for x != t.NIL {
		y = x
		if t.compare(z.key, x.key) < 0 {
			x = x.left
		} else if t.compare(x.key, z.key) < 0 {
			x = x.right
		} else {
			old := x.value
			x.value = z.value
			return old, true
		}
	}
	z.parent = y
	if y == t.NIL {
		t.root = z
	} else if t.compare(z.key, y.key) < 0 {
		y.left = z
	} else {
		y.right = z
	}
	t.count++
	t.insertFixup(z)
	var zero V
	return zero, false
}

func (t *Tree[K, V]) leftRotate(x *node[K, V]) {
	if x.right == t.NIL {
		return
	}
	y := x.right
	x.right = y.left
	if y.left != t.NIL {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.NIL {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rightRotate(x *node[K, V]) {
	if x.left == t.NIL {
		return
	}
	y := x.left
	x.left = y.right
	if y.right != t.NIL {
		y.right.parent = x
	}
	y.parent = x.parent

	if x.parent == t.NIL {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}

	y.right = x
	x.parent = y
}

func (t *Tree[K, V]) insertFixup(z *node[K, V]) {
	for z.parent.color == RED {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == RED {
				z.parent.color = BLACK
				y.color = BLACK
				z.parent.parent.color = RED
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = BLACK
				z.parent.parent.color = RED
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == RED {
				z.parent.color = BLACK
				y.color = BLACK
				z.parent.parent.color = RED
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = BLACK
				z.parent.parent.color = RED
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = BLACK
}

func (t *Tree[K, V]) search(key K) *node[K, V] {
	p := t.root
	for p != t.NIL {
		if t.compare(p.key, key) < 0 {
			p = p.right
		} else if t.compare(key, p.key) < 0 {
			p = p.left
		} else {
			break
		}
	}
	return p
}

// min traverses from x to the left until left is NIL
func (t *Tree[K, V]) min(x *node[K, V]) *node[K, V] {
	if x == t.NIL {
		return t.NIL
	}
	for x.left != t.NIL {
		x = x.left
	}
	return x
}

// max traverses from x to the right until right is NIL
func (t *Tree[K, V]) max(x *node[K, V]) *node[K, V] {
	if x == t.NIL {
		return t.NIL
	}
	for x.right != t.NIL {
		x = x.right
	}
	return x
}

func (t *Tree[K, V]) ascend(x *node[K, V], iter Iterator[K, V]) bool {
	if x == t.NIL {
		return true
	}
	if !t.ascend(x.left, iter) {
		return false
	}
	if !iter(x.key, x.value) {
		return false
	}
	return t.ascend(x.right, iter)
}

func (t *Tree[K, V]) descend(x *node[K, V], iter Iterator[K, V]) bool {
	if x == t.NIL {
		return true
	}
	if !t.descend(x.right, iter) {
		return false
	}
	if !iter(x.key, x.value) {
		return false
	}
	return t.descend(x.left, iter)
}

func (t *Tree[K, V]) ascendFrom(x *node[K, V], pivot K, iter Iterator[K, V]) bool {
	if x == t.NIL {
		return true
	}
	if t.compare(x.key, pivot) >= 0 {
		if !t.ascendFrom(x.left, pivot, iter) {
			return false
		}
		if !iter(x.key, x.value) {
			return false
		}
	}
	return t.ascendFrom(x.right, pivot, iter)
}
