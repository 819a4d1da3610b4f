package Trees

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// Token is one element of an encoded tree. The zero value is the sentinel
// standing for an absent child, so it never collides with a real key.
type Token[T any] struct {
	Key     T
	Present bool
}

// Sentinel returns the token marking an absent child.
func Sentinel[T any]() Token[T] {
	return Token[T]{}
}

// Serialize is the package level form of [BST.Encode].
func Serialize[T any](u *BST[T]) []Token[T] {
	return u.Encode()
}

// Deserialize builds a tree ordered by cmp.Compare from a token stream
// produced by Serialize. See [BST.Decode] for the errors.
func Deserialize[T cmp.Ordered](tokens []Token[T]) (*BST[T], error) {
	u := New[T]()
	if err := u.Decode(tokens); err != nil {
		return nil, err
	}
	return u, nil
}

// Encode the tree in pre-order, emitting a Sentinel for every absent child.
// An empty tree encodes to a single Sentinel. A tree of n keys encodes to
// 2n+1 tokens. Recursive.
// Time: O(n)
func (u *BST[T]) Encode() []Token[T] {
	return encode(u.root, make([]Token[T], 0, 2*u.Size()+1))
}

func encode[T any](n *node[T], acc []Token[T]) []Token[T] {
	if n == nil {
		return append(acc, Token[T]{})
	}
	acc = append(acc, Token[T]{n.v, true})
	acc = encode(n.l, acc)
	return encode(n.r, acc)
}

// decoder reads a pre-order token stream. pos is the next token to read.
type decoder[T any] struct {
	tokens  []Token[T]
	pos     int
	compare func(a, b T) int
}

// subtree consumes one subtree whose keys must lie strictly between lo and
// hi (nil meaning unbounded). Recursive.
func (d *decoder[T]) subtree(lo, hi *T) (*node[T], error) {
	if d.pos >= len(d.tokens) {
		return nil, fmt.Errorf("%w: token stream exhausted after %d tokens", ErrInvalidArgument, d.pos)
	}
	t := d.tokens[d.pos]
	d.pos++
	if !t.Present {
		return nil, nil
	}
	if lo != nil && d.compare(t.Key, *lo) <= 0 || hi != nil && d.compare(t.Key, *hi) >= 0 {
		return nil, fmt.Errorf("%w: key %v at token %d breaks the ordering", ErrInvalidArgument, t.Key, d.pos-1)
	}
	n := &node[T]{v: t.Key}
	var err error
	if n.l, err = d.subtree(lo, &n.v); err != nil {
		return nil, err
	}
	if n.r, err = d.subtree(&n.v, hi); err != nil {
		return nil, err
	}
	n.sz = n.l.size() + n.r.size() + 1
	return n, nil
}

// Decode replaces the content of u with the tree encoded by tokens,
// reproducing its exact shape. The returned error wraps ErrInvalidArgument
// when the stream ends before a subtree is closed, has tokens left after
// the root is closed, or holds keys breaking the ordering (duplicates
// included). u is unchanged when an error is returned.
// Time: O(n)
func (u *BST[T]) Decode(tokens []Token[T]) error {
	d := decoder[T]{tokens: tokens, compare: u.compare}
	root, err := d.subtree(nil, nil)
	if err != nil {
		return err
	}
	if d.pos != len(tokens) {
		return fmt.Errorf("%w: %d tokens after the end of the tree", ErrInvalidArgument, len(tokens)-d.pos)
	}
	u.root = root
	return nil
}

// ToJSON encodes the tree as the JSON array of its Encode tokens, null being the sentinel.
func (u *BST[T]) ToJSON() ([]byte, error) {
	tokens := u.Encode()
	raw := make([]*T, len(tokens))
	for i := range tokens {
		if tokens[i].Present {
			raw[i] = &tokens[i].Key
		}
	}
	return json.Marshal(raw)
}

// FromJSON replaces the content of u with the tree encoded by ToJSON.
func (u *BST[T]) FromJSON(data []byte) error {
	var raw []*T
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	tokens := make([]Token[T], len(raw))
	for i, p := range raw {
		if p != nil {
			tokens[i] = Token[T]{*p, true}
		}
	}
	return u.Decode(tokens)
}

// MarshalJSON @implements json.Marshaler
func (u *BST[T]) MarshalJSON() ([]byte, error) {
	return u.ToJSON()
}

// UnmarshalJSON @implements json.Unmarshaler
func (u *BST[T]) UnmarshalJSON(data []byte) error {
	return u.FromJSON(data)
}

// Digest hashes the encoded tree, so trees of the same shape holding the same
// keys have the same digest. Keys are hashed through their %v formatting.
// Time: O(n)
func (u *BST[T]) Digest() uint64 {
	var buf []byte
	for _, t := range u.Encode() {
		if t.Present {
			buf = fmt.Append(buf, t.Key)
		} else {
			buf = append(buf, '#')
		}
		buf = append(buf, 0)
	}
	return xxhash.Sum64(buf)
}

// Equal reports whether o has the same shape as u with equal keys at
// every position. Keys are compared with u's comparator. Recursive.
// Time: O(n)
func (u *BST[T]) Equal(o *BST[T]) bool {
	return u.equal(u.root, o.root)
}

func (u *BST[T]) equal(a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return u.compare(a.v, b.v) == 0 && u.equal(a.l, b.l) && u.equal(a.r, b.r)
}

// String draws the tree sideways, right subtree on top.
func (u *BST[T]) String() string {
	var sb strings.Builder
	sb.WriteString("BST\n")
	if u.root != nil {
		output(u.root, "", true, &sb)
	}
	return sb.String()
}

func output[T any](n *node[T], prefix string, isTail bool, sb *strings.Builder) {
	if n.r != nil {
		p := prefix + "    "
		if isTail {
			p = prefix + "│   "
		}
		output(n.r, p, false, sb)
	}
	sb.WriteString(prefix)
	if isTail {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}
	fmt.Fprintf(sb, "%v\n", n.v)
	if n.l != nil {
		p := prefix + "│   "
		if isTail {
			p = prefix + "    "
		}
		output(n.l, p, true, sb)
	}
}
