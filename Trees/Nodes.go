package Trees

// A node in the BST.
// A nil *node is an empty subtree. Every node exclusively owns l and r.
type node[T any] struct {
	v    T
	l, r *node[T]
	sz   uint // number of nodes in the subtree rooting at this node
}

// size of the subtree rooting at n, 0 for nil.
func (n *node[T]) size() uint {
	if n == nil {
		return 0
	}
	return n.sz
}

// removeMax detaches the rightmost node of the subtree rooting at n.
// It returns the new root of the subtree and the detached value.
// n must not be nil. Recursive.
// Time: O(D)
func removeMax[T any](n *node[T]) (*node[T], T) {
	if n.r == nil {
		return n.l, n.v
	}
	var v T
	n.r, v = removeMax(n.r)
	n.sz--
	return n, v
}

// clone the subtree rooting at n. Recursive.
func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{n.v, clone(n.l), clone(n.r), n.sz}
}
