package Trees

import (
	"cmp"
	"fmt"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var (
	_ Tree[int]                   = (*BST[int])(nil)
	_ containers.Container        = (*BST[int])(nil)
	_ containers.JSONSerializer   = (*BST[int])(nil)
	_ containers.JSONDeserializer = (*BST[int])(nil)
)

// BST is a binary search tree with no repeated values. It does no balancing,
// so inserting sorted values yields a chain and D, the height of the tree,
// is O(n) in the worst case.
// Every node caches the size of its subtree, so the additional memory cost
// is size(uint)*n and Size, Kth, RankOf don't need to walk the whole tree.
// BST shouldn't be created directly using struct literal, use New, NewFunc,
// NewWith or From.
// BST isn't safe for concurrent use while it is being modified.
type BST[T any] struct {
	root    *node[T]
	compare func(a, b T) int
}

// New returns an empty BST ordered by cmp.Compare.
func New[T cmp.Ordered]() *BST[T] {
	return &BST[T]{compare: cmp.Compare[T]}
}

// NewFunc returns an empty BST ordered by compare, which must define a
// total order: negative when a<b, zero when a==b, positive when a>b.
func NewFunc[T any](compare func(a, b T) int) *BST[T] {
	return &BST[T]{compare: compare}
}

// NewWith returns an empty BST ordered by a gods comparator, e.g.
// utils.IntComparator. gods comparators type assert their arguments; when
// such an assertion fails the tree panics with *InvalidArgumentError and
// is left unchanged.
func NewWith[T any](c utils.Comparator) *BST[T] {
	return &BST[T]{compare: func(a, b T) (r int) {
		defer func() {
			if p := recover(); p != nil {
				panic(&InvalidArgumentError{a, b, p})
			}
		}()
		return c(a, b)
	}}
}

// From builds a height balanced BST from the given slice recursively. This is
// faster than repeatedly calling Insert.
// The given slice must be sorted in strictly ascending order.
// If safe==true, this function will check if the conditions are met and panic with InvalidSliceError
// if the conditions are broken. Otherwise, it is up to the user to ensure the conditions
// are met (otherwise the tree will be corrupt).
// Time: O(n).
func From[T cmp.Ordered](sli []T, safe bool) *BST[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i-1] >= sli[i] {
				panic(InvalidSliceError{i, sli[i-1], sli[i]})
			}
		}
	}
	u := New[T]()
	u.root = build(sli)
	return u
}

func build[T any](s []T) *node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &node[T]{s[mid], build(s[:mid]), build(s[mid+1:]), uint(len(s))}
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() int {
	return int(u.root.size())
}

// Empty reports whether the tree has no element.
func (u *BST[T]) Empty() bool {
	return u.root == nil
}

// Clear drops every node.
func (u *BST[T]) Clear() {
	u.root = nil
}

// Clone returns a deep copy sharing no nodes with u.
// Time: O(n)
func (u *BST[T]) Clone() *BST[T] {
	return &BST[T]{clone(u.root), u.compare}
}

// Values in ascending order.
func (u *BST[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.Size())
	for it := u.InOrder(); ; {
		v, ok := it()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

// insert the value v to the subtree rooting at n recursively and return
// the new root of that subtree. A failed insertion
// happens when the value is already in u, in which case it returns false.
func (u *BST[T]) insert(n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return &node[T]{v: v, sz: 1}, true
	}
	inserted := false
	if c := u.compare(v, n.v); c < 0 {
		n.l, inserted = u.insert(n.l, v)
	} else if c > 0 {
		n.r, inserted = u.insert(n.r, v)
	} else {
		return n, false
	}
	if inserted {
		n.sz++
	}
	return n, inserted
}

// Insert [Tree.Insert]. Recursive.
// Inserting a value already in the tree is a no-op.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	var inserted bool
	u.root, inserted = u.insert(u.root, v)
	return inserted
}

// remove the value v from the subtree rooting at n recursively and return
// the new root of that subtree. A node with 2 children takes the value of its
// in-order predecessor, which is then detached from the left subtree.
// Time: O(D)
func (u *BST[T]) remove(n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	deleted := false
	if c := u.compare(v, n.v); c < 0 {
		n.l, deleted = u.remove(n.l, v)
	} else if c > 0 {
		n.r, deleted = u.remove(n.r, v)
	} else if n.l == nil {
		return n.r, true
	} else if n.r == nil {
		return n.l, true
	} else {
		n.l, n.v = removeMax(n.l)
		deleted = true
	}
	if deleted {
		n.sz--
	}
	return n, deleted
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	var deleted bool
	u.root, deleted = u.remove(u.root, v)
	return deleted
}

// find the node holding v, nil if absent.
func (u *BST[T]) find(v T) *node[T] {
	for cur := u.root; cur != nil; {
		if c := u.compare(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.find(v) != nil
}

// Find returns the stored element equal to v. This matters when the
// comparator only looks at part of T. The error wraps ErrKeyNotFound.
// Time: O(D); Space: O(1)
func (u *BST[T]) Find(v T) (T, error) {
	if n := u.find(v); n != nil {
		return n.v, nil
	}
	return *new(T), fmt.Errorf("%w: %v", ErrKeyNotFound, v)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.compare(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.compare(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Kth [Tree.Kth]
// Returns (x,true) if 1<=k<=Size(), otherwise (0,false).
// Time: O(D); Space: O(1)
func (u *BST[T]) Kth(k int) (T, bool) {
	if k < 1 || k > u.Size() {
		return *new(T), false
	}
	t := uint(k)
	cur := u.root
	for {
		if ls := cur.l.size(); t <= ls {
			cur = cur.l
		} else if t == ls+1 {
			return cur.v, true
		} else {
			t -= ls + 1
			cur = cur.r
		}
	}
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *BST[T]) RankOf(v T) int {
	var ra uint
	for cur := u.root; cur != nil; {
		if c := u.compare(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			ra += cur.l.size() + 1
			cur = cur.r
		} else {
			return int(ra + cur.l.size() + 1)
		}
	}
	return 0
}
