package Trees

import (
	"errors"
	"fmt"
)

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is already present.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if v was present.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Kth element in in-order, 1<=k<=Size().
	Kth(k int) (T, bool)
	//RankOf v in the tree according to in-order.
	//1<=r<=Size(), 0 when v is absent.
	RankOf(v T) int
	//Size of the tree.
	Size() int
	//Traverse materializes the keys in the given order.
	Traverse(o Order) []T
	//InOrder returns A closure function f acting like an iterator. f
	//gives nodes in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or the cached subtree sizes are wrong.
	Corrupt() bool
}

// Order of a depth first traversal.
type Order byte

const (
	Pre  Order = iota // node, left, right
	In                // left, node, right
	Post              // left, right, node
)

func (o Order) String() string {
	switch o {
	case Pre:
		return "pre-order"
	case In:
		return "in-order"
	case Post:
		return "post-order"
	}
	return fmt.Sprintf("Order(%d)", byte(o))
}

var (
	// ErrKeyNotFound is returned by lookups of absent keys.
	ErrKeyNotFound = errors.New("Trees: key not found")
	// ErrInvalidArgument is wrapped by every error caused by bad caller input.
	ErrInvalidArgument = errors.New("Trees: invalid argument")
)

// InvalidArgumentError is panicked when two keys can't be ordered, for
// example a gods comparator meeting a key of the wrong dynamic type, or
// when an unknown Order is requested.
type InvalidArgumentError struct {
	A, B  any
	Cause any
}

func (e *InvalidArgumentError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%v: %v", ErrInvalidArgument, e.A)
	}
	return fmt.Sprintf("%v: cannot compare %v and %v: %v", ErrInvalidArgument, e.A, e.B, e.Cause)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// InvalidSliceError is panicked by From when the given slice isn't
// strictly ascending: sli[Index-1] >= sli[Index].
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("%v: slice not strictly ascending at %d: %v >= %v", ErrInvalidArgument, e.Index, e.Prev, e.Next)
}

func (e InvalidSliceError) Unwrap() error {
	return ErrInvalidArgument
}
