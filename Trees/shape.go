package Trees

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Height is the number of nodes on the longest path from the root to a
// leaf, 0 for an empty tree. Recursive.
// Time: O(n)
func (u *BST[T]) Height() int {
	return height(u.root)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return max(height(n.l), height(n.r)) + 1
}

// MinDepth is the number of nodes on the shortest path from the root to a
// leaf, 0 for an empty tree. It stops at the first level holding a leaf.
// Time: O(n); Space: O(n)
func (u *BST[T]) MinDepth() int {
	if u.root == nil {
		return 0
	}
	q := linkedlistqueue.New()
	q.Enqueue(u.root)
	for d := 1; ; d++ {
		for range q.Size() {
			top, _ := q.Dequeue()
			n := top.(*node[T])
			if n.l == nil && n.r == nil {
				return d
			}
			if n.l != nil {
				q.Enqueue(n.l)
			}
			if n.r != nil {
				q.Enqueue(n.r)
			}
		}
	}
}

// shape of a subtree as seen by its parent.
type shape struct {
	height   int  // nodes on the longest downward path
	balanced bool // heights of every pair of sibling subtrees differ by at most 1
	diameter int  // edges on the longest path between 2 nodes of the subtree
}

func measure[T any](n *node[T]) shape {
	if n == nil {
		return shape{0, true, 0}
	}
	l, r := measure(n.l), measure(n.r)
	return shape{
		height:   max(l.height, r.height) + 1,
		balanced: l.balanced && r.balanced && l.height-r.height <= 1 && r.height-l.height <= 1,
		diameter: max(l.diameter, r.diameter, l.height+r.height),
	}
}

// Balanced reports whether, at every node, the heights of the 2 subtrees
// differ by at most 1. Recursive.
// Time: O(n)
func (u *BST[T]) Balanced() bool {
	return measure(u.root).balanced
}

// Diameter is the number of edges on the longest path between any 2 nodes,
// 0 for trees with less than 2 nodes. Recursive.
// Time: O(n)
func (u *BST[T]) Diameter() int {
	return measure(u.root).diameter
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	return !u.valid(u.root, nil, nil)
}

// valid checks that every key of the subtree rooting at n is strictly
// between lo and hi (nil meaning unbounded) and that the cached sizes add up.
func (u *BST[T]) valid(n *node[T], lo, hi *T) bool {
	if n == nil {
		return true
	}
	if lo != nil && u.compare(n.v, *lo) <= 0 || hi != nil && u.compare(n.v, *hi) >= 0 {
		return false
	}
	if n.sz != n.l.size()+n.r.size()+1 {
		return false
	}
	return u.valid(n.l, lo, &n.v) && u.valid(n.r, &n.v, hi)
}
