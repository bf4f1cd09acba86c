// Package sortedgroups implements an in-memory container that stores
// elements in sorted groups while maintaining the insertion order of
// the elements in each group.
//
// Every element is assigned to a group by a key function supplied at
// construction time. Groups are visited in ascending key order;
// within a group, elements are visited in the order they were
// inserted, no matter how inserts into other groups were interleaved.
//
//	type element struct {
//		group int
//		value int
//	}
//
//	sg := sortedgroups.New[int, element](func(e element) int { return e.group })
//	sg.Insert(element{group: 1, value: 1})
//	sg.Insert(element{group: 1, value: 2})
//	sg.Insert(element{group: 2, value: 3})
//
//	sg.Len()       // 3
//	sg.GroupsLen() // 2
//	for g, e := range sg.Iter() {
//		// (1, {1 1}), (1, {1 2}), (2, {2 3})
//	}
//
// The key function must be deterministic: the same element must
// always yield the same key. A SortedGroups is not safe for
// concurrent use; callers that share one across goroutines must
// provide their own synchronization.
package sortedgroups

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/scottcagno/sortedgroups/pkg/rbtree"
	"golang.org/x/exp/constraints"
)

// KeyFunc derives the group key for an element.
type KeyFunc[G any, E any] func(e E) G

// TryKeyFunc is a KeyFunc that may fail. A failed key extraction
// aborts the insert and leaves the container untouched.
type TryKeyFunc[G any, E any] func(e E) (G, error)

// SortedGroups stores elements of type E partitioned into groups
// keyed by G. Groups are ordered ascending by key; elements within a
// group keep their insertion order.
type SortedGroups[G any, E any] struct {
	groups *rbtree.Tree[G, []E]
	keyOf  TryKeyFunc[G, E]
	count  int
}

// New returns an empty container whose groups are ordered by the
// natural ordering of G. Elements are grouped by the key keyOf
// derives for them.
func New[G constraints.Ordered, E any](keyOf KeyFunc[G, E]) *SortedGroups[G, E] {
	return NewCompare[G, E](rbtree.Compare[G], keyOf)
}

// NewTry is New for a key function that can fail.
func NewTry[G constraints.Ordered, E any](keyOf TryKeyFunc[G, E]) *SortedGroups[G, E] {
	return &SortedGroups[G, E]{
		groups: rbtree.NewTree[G, []E](rbtree.Compare[G]),
		keyOf:  keyOf,
	}
}

// NewCompare returns an empty container whose groups are ordered by
// the supplied comparator: negative when a sorts before b, positive
// when a sorts after b, zero when equal (only the sign matters). The
// comparator must define a consistent strict-weak ordering over G;
// this is a precondition, not something checked at runtime.
func NewCompare[G any, E any](compare func(a, b G) int, keyOf KeyFunc[G, E]) *SortedGroups[G, E] {
	return &SortedGroups[G, E]{
		groups: rbtree.NewTree[G, []E](compare),
		keyOf: func(e E) (G, error) {
			return keyOf(e), nil
		},
	}
}

// FromSeq builds a container from a sequence of elements, inserting
// them in order.
func FromSeq[G constraints.Ordered, E any](seq iter.Seq[E], keyOf KeyFunc[G, E]) *SortedGroups[G, E] {
	sg := New[G, E](keyOf)
	for e := range seq {
		sg.Insert(e)
	}
	return sg
}

// Insert adds e to the group its key selects, creating the group if
// this is the first element with that key. Within the group, e goes
// after every element inserted before it.
//
// Insert only fails when a TryKeyFunc fails; the key function's
// error is returned wrapped and the container is left exactly as it
// was. For containers built with New or NewCompare the returned
// error is always nil.
func (sg *SortedGroups[G, E]) Insert(e E) error {
	k, err := sg.keyOf(e)
	if err != nil {
		return errors.Wrap(err, "sortedgroups: extracting key")
	}
	group, _ := sg.groups.Get(k)
	sg.groups.Put(k, append(group, e))
	sg.count++
	return nil
}

// Len returns the total number of elements across all groups.
func (sg *SortedGroups[G, E]) Len() int {
	return sg.count
}

// GroupsLen returns the number of distinct group keys present.
func (sg *SortedGroups[G, E]) GroupsLen() int {
	return sg.groups.Len()
}

// Group returns the elements stored under key g in insertion order.
// The returned slice is the container's own backing slice and must
// not be modified.
func (sg *SortedGroups[G, E]) Group(g G) ([]E, bool) {
	return sg.groups.Get(g)
}

// Iter returns an iterator over (key, element) pairs: groups in
// ascending key order, elements within a group in insertion order.
// The sequence is lazy and can be ranged over any number of times;
// mutating the container mid-iteration is unsupported.
func (sg *SortedGroups[G, E]) Iter() iter.Seq2[G, E] {
	return func(yield func(G, E) bool) {
		sg.groups.ScanFront(func(g G, group []E) bool {
			for _, e := range group {
				if !yield(g, e) {
					return false
				}
			}
			return true
		})
	}
}

// Groups returns an iterator over whole groups in ascending key
// order. The yielded slices are the container's own backing slices
// and must not be modified.
func (sg *SortedGroups[G, E]) Groups() iter.Seq2[G, []E] {
	return func(yield func(G, []E) bool) {
		sg.groups.ScanFront(func(g G, group []E) bool {
			return yield(g, group)
		})
	}
}
