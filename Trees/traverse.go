package Trees

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/constraints"
)

// Traverse [Tree.Traverse]. Recursive.
// Panics with *InvalidArgumentError when o isn't Pre, In or Post.
// Time: O(n)
func (u *BST[T]) Traverse(o Order) []T {
	acc := make([]T, 0, u.Size())
	switch o {
	case Pre:
		return preOrder(u.root, acc)
	case In:
		return inOrder(u.root, acc)
	case Post:
		return postOrder(u.root, acc)
	}
	panic(&InvalidArgumentError{A: o})
}

func preOrder[T any](n *node[T], acc []T) []T {
	if n == nil {
		return acc
	}
	acc = append(acc, n.v)
	acc = preOrder(n.l, acc)
	return preOrder(n.r, acc)
}

func inOrder[T any](n *node[T], acc []T) []T {
	if n == nil {
		return acc
	}
	acc = inOrder(n.l, acc)
	acc = append(acc, n.v)
	return inOrder(n.r, acc)
}

func postOrder[T any](n *node[T], acc []T) []T {
	if n == nil {
		return acc
	}
	acc = postOrder(n.l, acc)
	acc = postOrder(n.r, acc)
	return append(acc, n.v)
}

// Iter returns a lazy iterator over the given order, see [Tree.InOrder] for
// how to call it. The iterator keeps its own stack of at most D nodes and
// doesn't touch the tree's links.
// Panics with *InvalidArgumentError when o isn't Pre, In or Post.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BST[T]) Iter(o Order) func() (T, bool) {
	switch o {
	case Pre:
		return u.preIter()
	case In:
		return u.inIter()
	case Post:
		return u.postIter()
	}
	panic(&InvalidArgumentError{A: o})
}

// InOrder [Tree.InOrder]
func (u *BST[T]) InOrder() func() (T, bool) {
	return u.inIter()
}

func (u *BST[T]) preIter() func() (T, bool) {
	st := arraystack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (r T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		n := top.(*node[T])
		if n.r != nil {
			st.Push(n.r)
		}
		if n.l != nil {
			st.Push(n.l)
		}
		return n.v, true
	}
}

func (u *BST[T]) inIter() func() (T, bool) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	return func() (r T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		n := top.(*node[T])
		for cur := n.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		return n.v, true
	}
}

// postIter descends left first, and only emits a node once its right child
// is the last emitted node or absent.
func (u *BST[T]) postIter() func() (T, bool) {
	st := arraystack.New()
	cur, last := u.root, (*node[T])(nil)
	return func() (r T, has bool) {
		for {
			for ; cur != nil; cur = cur.l {
				st.Push(cur)
			}
			top, ok := st.Peek()
			if !ok {
				return
			}
			n := top.(*node[T])
			if n.r != nil && n.r != last {
				cur = n.r
				continue
			}
			st.Pop()
			last = n
			return n.v, true
		}
	}
}

// LevelOrder returns the keys grouped by depth, the root's level first.
// Time: O(n); Space: O(n)
func (u *BST[T]) LevelOrder() [][]T {
	var levels [][]T
	q := linkedlistqueue.New()
	if u.root != nil {
		q.Enqueue(u.root)
	}
	for !q.Empty() {
		level := make([]T, 0, q.Size())
		for range q.Size() {
			top, _ := q.Dequeue()
			n := top.(*node[T])
			level = append(level, n.v)
			if n.l != nil {
				q.Enqueue(n.l)
			}
			if n.r != nil {
				q.Enqueue(n.r)
			}
		}
		levels = append(levels, level)
	}
	return levels
}

// Range calls f on every key in [lo, hi] in ascending order until f returns
// false. Subtrees entirely outside the range aren't visited. Recursive.
// Time: O(D+k) where k is the number of keys in range.
func (u *BST[T]) Range(lo, hi T, f func(T) bool) {
	u.rangeFrom(u.root, lo, hi, f)
}

func (u *BST[T]) rangeFrom(n *node[T], lo, hi T, f func(T) bool) bool {
	if n == nil {
		return true
	}
	cl, ch := u.compare(n.v, lo), u.compare(n.v, hi)
	if cl > 0 && !u.rangeFrom(n.l, lo, hi, f) {
		return false
	}
	if cl >= 0 && ch <= 0 && !f(n.v) {
		return false
	}
	if ch < 0 {
		return u.rangeFrom(n.r, lo, hi, f)
	}
	return true
}

// Number is the key type RangeSum and MinGap can do arithmetic on.
type Number interface {
	constraints.Integer | constraints.Float
}

// RangeSum adds up every key in [lo, hi].
func RangeSum[T Number](u *BST[T], lo, hi T) T {
	var s T
	u.Range(lo, hi, func(v T) bool {
		s += v
		return true
	})
	return s
}

// MinGap returns the smallest difference between 2 keys of the tree, which
// is always between in-order neighbours. False when there are less than 2 keys.
// Time: O(n); Space: O(D)
func MinGap[T Number](u *BST[T]) (T, bool) {
	it := u.InOrder()
	prev, ok := it()
	if !ok {
		return prev, false
	}
	var best T
	found := false
	for v, ok := it(); ok; v, ok = it() {
		if d := v - prev; !found || d < best {
			best, found = d, true
		}
		prev = v
	}
	return best, found
}
