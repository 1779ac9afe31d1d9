package naming

import (
	"hash/maphash"
	"math/bits"
	"slices"
)

// pmap is a persistent hash array mapped trie. Set returns a new map and
// leaves the receiver untouched; unchanged subtrees are shared between
// versions. A nil *pmap is a valid empty map.
type pmap[K comparable, V any] struct {
	root *hamtNode[K, V]
	size int
	seed maphash.Seed
}

const (
	hamtBits     = 5
	hamtMask     = 1<<hamtBits - 1
	hamtMaxShift = 60
)

type hamtLeaf[K comparable, V any] struct {
	hash uint64
	key  K
	val  V
}

// hamtSlot holds either a leaf or a child node.
type hamtSlot[K comparable, V any] struct {
	leaf  *hamtLeaf[K, V]
	child *hamtNode[K, V]
}

type hamtNode[K comparable, V any] struct {
	bitmap uint32
	slots  []hamtSlot[K, V]
	// collisions is used only below hamtMaxShift, where the hash is spent.
	collisions []hamtLeaf[K, V]
}

func newPmap[K comparable, V any]() *pmap[K, V] {
	return &pmap[K, V]{seed: maphash.MakeSeed()}
}

func (m *pmap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

func (m *pmap[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	h := maphash.Comparable(m.seed, key)
	n := m.root
	for shift := uint(0); n != nil; shift += hamtBits {
		if shift > hamtMaxShift {
			for _, l := range n.collisions {
				if l.key == key {
					return l.val, true
				}
			}
			return zero, false
		}
		bit := uint32(1) << ((h >> shift) & hamtMask)
		if n.bitmap&bit == 0 {
			return zero, false
		}
		s := n.slots[bits.OnesCount32(n.bitmap&(bit-1))]
		if s.leaf != nil {
			if s.leaf.key == key {
				return s.leaf.val, true
			}
			return zero, false
		}
		n = s.child
	}
	return zero, false
}

// Set returns a map that also maps key to val.
func (m *pmap[K, V]) Set(key K, val V) *pmap[K, V] {
	if m == nil {
		m = newPmap[K, V]()
	}
	leaf := &hamtLeaf[K, V]{hash: maphash.Comparable(m.seed, key), key: key, val: val}
	root, added := hamtInsert(m.root, leaf, 0)
	size := m.size
	if added {
		size++
	}
	return &pmap[K, V]{root: root, size: size, seed: m.seed}
}

func hamtInsert[K comparable, V any](n *hamtNode[K, V], leaf *hamtLeaf[K, V], shift uint) (*hamtNode[K, V], bool) {
	if n == nil {
		n = &hamtNode[K, V]{}
	}
	if shift > hamtMaxShift {
		out := &hamtNode[K, V]{collisions: slices.Clone(n.collisions)}
		for i := range out.collisions {
			if out.collisions[i].key == leaf.key {
				out.collisions[i] = *leaf
				return out, false
			}
		}
		out.collisions = append(out.collisions, *leaf)
		return out, true
	}

	bit := uint32(1) << ((leaf.hash >> shift) & hamtMask)
	idx := bits.OnesCount32(n.bitmap & (bit - 1))
	out := &hamtNode[K, V]{bitmap: n.bitmap, slots: slices.Clone(n.slots)}
	if n.bitmap&bit == 0 {
		out.bitmap |= bit
		out.slots = slices.Insert(out.slots, idx, hamtSlot[K, V]{leaf: leaf})
		return out, true
	}

	s := n.slots[idx]
	switch {
	case s.child != nil:
		child, added := hamtInsert(s.child, leaf, shift+hamtBits)
		out.slots[idx] = hamtSlot[K, V]{child: child}
		return out, added
	case s.leaf.key == leaf.key:
		out.slots[idx] = hamtSlot[K, V]{leaf: leaf}
		return out, false
	default:
		child, _ := hamtInsert(nil, s.leaf, shift+hamtBits)
		child, _ = hamtInsert(child, leaf, shift+hamtBits)
		out.slots[idx] = hamtSlot[K, V]{child: child}
		return out, true
	}
}

// Range calls fn for every entry in unspecified order until fn returns
// false.
func (m *pmap[K, V]) Range(fn func(K, V) bool) {
	if m == nil || m.root == nil {
		return
	}
	m.root.each(fn)
}

func (n *hamtNode[K, V]) each(fn func(K, V) bool) bool {
	for _, l := range n.collisions {
		if !fn(l.key, l.val) {
			return false
		}
	}
	for _, s := range n.slots {
		if s.leaf != nil {
			if !fn(s.leaf.key, s.leaf.val) {
				return false
			}
			continue
		}
		if !s.child.each(fn) {
			return false
		}
	}
	return true
}
