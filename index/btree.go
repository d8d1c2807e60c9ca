package index

import (
	"sync"

	"github.com/chunkio/chunkio/model"
	"github.com/google/btree"
)

var _ Index = (*BTree)(nil)

const defaultDegree = 32

// BTree implement the measurement index
type BTree struct {
	tree *btree.BTree

	// be cautious!!!
	// lock should be caught before concurrent write
	lock *sync.RWMutex
}

// Item implement the btree.Item interface
type Item struct {
	measurement string
	positions   []*model.ChunkPos
}

func (i *Item) Less(than btree.Item) bool {
	return i.measurement < than.(*Item).measurement
}

func NewBTree(degree int) *BTree {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &BTree{
		tree: btree.New(degree),
		lock: &sync.RWMutex{},
	}
}

// Put appends pos to the measurement's chunk list, keeping file order.
func (bt *BTree) Put(measurement string, pos *model.ChunkPos) {
	bt.lock.Lock()
	defer bt.lock.Unlock()
	probe := &Item{measurement: measurement}
	if existing := bt.tree.Get(probe); existing != nil {
		item := existing.(*Item)
		item.positions = append(item.positions, pos)
		return
	}
	probe.positions = []*model.ChunkPos{pos}
	bt.tree.ReplaceOrInsert(probe)
}

func (bt *BTree) Get(measurement string) []*model.ChunkPos {
	bt.lock.RLock()
	defer bt.lock.RUnlock()
	item := bt.tree.Get(&Item{measurement: measurement})
	if item == nil {
		return nil
	}
	return item.(*Item).positions
}

func (bt *BTree) Size() int {
	return bt.tree.Len()
}

func (bt *BTree) Close() error {
	bt.tree.Clear(false)
	return nil
}

func (bt *BTree) Iterator() Iterator {
	return bt.newBtreeIterator()
}

type btreeIterator struct {
	values []*Item
	curIdx int
}

func (bt *BTree) newBtreeIterator() *btreeIterator {
	bt.lock.RLock()
	defer bt.lock.RUnlock()

	iterator := &btreeIterator{
		values: make([]*Item, bt.tree.Len()),
		curIdx: 0,
	}

	var idx int
	getValues := func(item btree.Item) bool {
		iterator.values[idx] = item.(*Item)
		idx++
		return true
	}

	bt.tree.Ascend(getValues)

	return iterator
}

func (bti *btreeIterator) Rewind() {
	bti.curIdx = 0
}

func (bti *btreeIterator) Next() {
	bti.curIdx++
}

func (bti *btreeIterator) Valid() bool {
	return bti.curIdx < len(bti.values)
}

func (bti *btreeIterator) Measurement() string {
	return bti.values[bti.curIdx].measurement
}

func (bti *btreeIterator) Positions() []*model.ChunkPos {
	return bti.values[bti.curIdx].positions
}
