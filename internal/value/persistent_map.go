package value

import (
	"math/bits"
	"sort"
)

// Persistent Hash Array Mapped Trie backing the Map and Set variants.
// Keys are matched with SameValueZero. Every entry carries the sequence
// number of its first insertion so iteration follows insertion order.

const (
	hamtBits = 5
	hamtSize = 1 << hamtBits // 32
	hamtMask = hamtSize - 1
)

// PersistentMap is an immutable hash map from Value to Value.
type PersistentMap struct {
	root    *hamtNode
	count   int
	nextSeq int
}

type hamtNode struct {
	bitmap uint32        // which indices are populated
	nodes  []interface{} // hamtEntry or *hamtNode
}

type hamtEntry struct {
	hash  uint32
	seq   int
	key   Value
	value Value
}

// Entry is one key/value pair of a PersistentMap.
type Entry struct {
	Key   Value
	Value Value
}

// EmptyMap returns an empty persistent map
func EmptyMap() *PersistentMap {
	return &PersistentMap{}
}

// Len returns the number of entries
func (m *PersistentMap) Len() int {
	return m.count
}

// Get returns the value stored under key.
func (m *PersistentMap) Get(key Value) (Value, bool) {
	if m.root == nil {
		return nil, false
	}
	key = orUndefined(key)
	e, ok := m.root.get(key.Hash(), key, 0)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Contains checks if a key exists
func (m *PersistentMap) Contains(key Value) bool {
	_, ok := m.Get(key)
	return ok
}

// Put returns a new map with key bound to value. Rebinding an existing key
// keeps its original position.
func (m *PersistentMap) Put(key, value Value) *PersistentMap {
	key, value = orUndefined(key), orUndefined(value)
	root := m.root
	if root == nil {
		root = &hamtNode{}
	}
	entry := hamtEntry{hash: key.Hash(), seq: m.nextSeq, key: key, value: value}
	newRoot, added := root.put(entry, 0)

	next := &PersistentMap{root: newRoot, count: m.count, nextSeq: m.nextSeq}
	if added {
		next.count++
		next.nextSeq++
	}
	return next
}

// Entries returns all pairs in insertion order.
func (m *PersistentMap) Entries() []Entry {
	if m.root == nil {
		return nil
	}
	raw := make([]hamtEntry, 0, m.count)
	m.root.collect(&raw)
	sort.Slice(raw, func(i, j int) bool { return raw[i].seq < raw[j].seq })

	out := make([]Entry, len(raw))
	for i, e := range raw {
		out[i] = Entry{Key: e.key, Value: e.value}
	}
	return out
}

// Keys returns all keys in insertion order.
func (m *PersistentMap) Keys() []Value {
	entries := m.Entries()
	keys := make([]Value, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

func (n *hamtNode) get(hash uint32, key Value, shift uint) (hamtEntry, bool) {
	if shift >= 32 {
		// collision bucket
		for _, node := range n.nodes {
			if e, ok := node.(hamtEntry); ok && SameValueZero(e.key, key) {
				return e, true
			}
		}
		return hamtEntry{}, false
	}

	bit := uint32(1) << ((hash >> shift) & hamtMask)
	if n.bitmap&bit == 0 {
		return hamtEntry{}, false
	}

	switch v := n.nodes[n.index(bit)].(type) {
	case hamtEntry:
		if v.hash == hash && SameValueZero(v.key, key) {
			return v, true
		}
	case *hamtNode:
		return v.get(hash, key, shift+hamtBits)
	}
	return hamtEntry{}, false
}

func (n *hamtNode) put(entry hamtEntry, shift uint) (*hamtNode, bool) {
	clone := n.clone()

	if shift >= 32 {
		for i, node := range clone.nodes {
			if e, ok := node.(hamtEntry); ok && SameValueZero(e.key, entry.key) {
				entry.seq = e.seq
				clone.nodes[i] = entry
				return clone, false
			}
		}
		clone.nodes = append(clone.nodes, entry)
		return clone, true
	}

	bit := uint32(1) << ((entry.hash >> shift) & hamtMask)
	pos := n.index(bit)

	if n.bitmap&bit == 0 {
		clone.bitmap |= bit
		clone.nodes = append(clone.nodes, nil)
		copy(clone.nodes[pos+1:], clone.nodes[pos:])
		clone.nodes[pos] = entry
		return clone, true
	}

	switch v := clone.nodes[pos].(type) {
	case hamtEntry:
		if v.hash == entry.hash && SameValueZero(v.key, entry.key) {
			entry.seq = v.seq
			clone.nodes[pos] = entry
			return clone, false
		}
		// Push both entries one level down.
		child, _ := (&hamtNode{}).put(v, shift+hamtBits)
		child, added := child.put(entry, shift+hamtBits)
		clone.nodes[pos] = child
		return clone, added
	case *hamtNode:
		child, added := v.put(entry, shift+hamtBits)
		clone.nodes[pos] = child
		return clone, added
	}
	return clone, false
}

func (n *hamtNode) collect(out *[]hamtEntry) {
	for _, node := range n.nodes {
		switch v := node.(type) {
		case hamtEntry:
			*out = append(*out, v)
		case *hamtNode:
			v.collect(out)
		}
	}
}

func (n *hamtNode) index(bit uint32) int {
	return bits.OnesCount32(n.bitmap & (bit - 1))
}

func (n *hamtNode) clone() *hamtNode {
	c := &hamtNode{bitmap: n.bitmap, nodes: make([]interface{}, len(n.nodes))}
	copy(c.nodes, n.nodes)
	return c
}
