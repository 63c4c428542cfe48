// File: adjacency_list.go
// Role: per-vertex list containers behind the Storage discipline.
//
// Both implementations keep insertion order and never remove entries.
package core

import "github.com/emirpasic/gods/lists/doublylinkedlist"

// indexList is an append-only ordered list of arena indices.
type indexList interface {
	Append(i int)
	Len() int
	// Each calls fn in insertion order until fn returns false.
	Each(fn func(i int) bool)
	// Clone returns an independent copy.
	Clone() indexList
}

func newIndexList(s Storage) indexList {
	if s == StorageList {
		return &linkedIndexList{l: doublylinkedlist.New()}
	}

	return &denseIndexList{}
}

type denseIndexList struct {
	items []int
}

func (d *denseIndexList) Append(i int) { d.items = append(d.items, i) }

func (d *denseIndexList) Len() int { return len(d.items) }

func (d *denseIndexList) Each(fn func(i int) bool) {
	for _, i := range d.items {
		if !fn(i) {
			return
		}
	}
}

func (d *denseIndexList) Clone() indexList {
	return &denseIndexList{items: append([]int(nil), d.items...)}
}

type linkedIndexList struct {
	l *doublylinkedlist.List
}

func (ll *linkedIndexList) Append(i int) { ll.l.Add(i) }

func (ll *linkedIndexList) Len() int { return ll.l.Size() }

func (ll *linkedIndexList) Each(fn func(i int) bool) {
	it := ll.l.Iterator()
	for it.Next() {
		if !fn(it.Value().(int)) {
			return
		}
	}
}

func (ll *linkedIndexList) Clone() indexList {
	return &linkedIndexList{l: doublylinkedlist.New(ll.l.Values()...)}
}

// collect drains l into a slice of mapped values.
func collect[H any](l indexList, mk func(int) H) []H {
	if l == nil {
		return nil
	}
	out := make([]H, 0, l.Len())
	l.Each(func(i int) bool {
		out = append(out, mk(i))
		return true
	})

	return out
}
