package indexset

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/apperror"
)

const nilNode int32 = -1

type node struct {
	key   int
	size  int
	left  int32
	right int32
}

// IndexSet is a randomized binary search tree over cell indices in [0, capacity).
// Balance comes from coin flips on insertion and join, sized by subtree counts.
// Nodes live in an arena and are addressed by slot handles.
type IndexSet struct {
	capacity int
	rng      *rand.Rand

	nodes []node
	free  []int32
	root  int32
}

func New(capacity int, seed int64) (*IndexSet, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d", apperror.ErrOutOfRange, capacity)
	}

	return &IndexSet{
		capacity: capacity,
		rng:      rand.New(rand.NewSource(seed)), //nolint: gosec // balance only, not security
		nodes:    make([]node, 0, capacity),
		root:     nilNode,
	}, nil
}

// Reseed replaces the generator state used for rotations and joins.
func (that *IndexSet) Reseed(seed int64) {
	that.rng.Seed(seed)
}

func (that *IndexSet) Capacity() int {
	return that.capacity
}

func (that *IndexSet) Len() int {
	return that.size(that.root)
}

func (that *IndexSet) Contains(key int) bool {
	if !that.inRange(key) {
		return false
	}

	return that.find(that.root, key)
}

// Insert adds key to the set. Inserting a present key is a no-op.
func (that *IndexSet) Insert(key int) error {
	if !that.inRange(key) {
		return fmt.Errorf("%w: insert %d", apperror.ErrOutOfRange, key)
	}

	if that.find(that.root, key) {
		return nil
	}

	that.root = that.insert(that.root, key)

	return nil
}

// Remove deletes key from the set. Removing an absent key is a no-op.
func (that *IndexSet) Remove(key int) error {
	if !that.inRange(key) {
		return fmt.Errorf("%w: remove %d", apperror.ErrOutOfRange, key)
	}

	that.root = that.remove(that.root, key)

	return nil
}

// Fill resets the set to hold every index in [0, capacity).
func (that *IndexSet) Fill() {
	that.Clear()

	for key := 0; key < that.capacity; key++ {
		that.root = that.insert(that.root, key)
	}
}

// Clear drops every node. The arena keeps its backing storage for the next round.
func (that *IndexSet) Clear() {
	that.nodes = that.nodes[:0]
	that.free = that.free[:0]
	that.root = nilNode
}

// Root returns a read-only view of the root node.
func (that *IndexSet) Root() (Node, error) {
	if that.root == nilNode {
		return Node{}, apperror.ErrNoMovesAvailable
	}

	return Node{set: that, id: that.root}, nil
}

// Keys returns the members in ascending order.
func (that *IndexSet) Keys() []int {
	keys := make([]int, 0, that.Len())

	var walk func(id int32)
	walk = func(id int32) {
		if id == nilNode {
			return
		}
		walk(that.nodes[id].left)
		keys = append(keys, that.nodes[id].key)
		walk(that.nodes[id].right)
	}
	walk(that.root)

	return keys
}

// Height is the number of nodes on the longest root-to-leaf path.
func (that *IndexSet) Height() int {
	var height func(id int32) int
	height = func(id int32) int {
		if id == nilNode {
			return 0
		}
		return 1 + max(height(that.nodes[id].left), height(that.nodes[id].right))
	}

	return height(that.root)
}

func (that *IndexSet) inRange(key int) bool {
	return key >= 0 && key < that.capacity
}

func (that *IndexSet) size(id int32) int {
	if id == nilNode {
		return 0
	}

	return that.nodes[id].size
}

func (that *IndexSet) fixSize(id int32) {
	n := &that.nodes[id]
	n.size = that.size(n.left) + that.size(n.right) + 1
}

func (that *IndexSet) alloc(key int) int32 {
	n := node{key: key, size: 1, left: nilNode, right: nilNode}

	if last := len(that.free) - 1; last >= 0 {
		id := that.free[last]
		that.free = that.free[:last]
		that.nodes[id] = n
		return id
	}

	that.nodes = append(that.nodes, n)

	return int32(len(that.nodes) - 1) //nolint: gosec // bounded by capacity
}

func (that *IndexSet) release(id int32) {
	that.nodes[id] = node{left: nilNode, right: nilNode}
	that.free = append(that.free, id)
}

func (that *IndexSet) find(id int32, key int) bool {
	if id == nilNode {
		return false
	}

	n := that.nodes[id]
	switch {
	case key == n.key:
		return true
	case key < n.key:
		return that.find(n.left, key)
	default:
		return that.find(n.right, key)
	}
}

func (that *IndexSet) rotateRight(id int32) int32 {
	pivot := that.nodes[id].left
	if pivot == nilNode {
		return id
	}

	that.nodes[id].left = that.nodes[pivot].right
	that.nodes[pivot].right = id
	that.nodes[pivot].size = that.nodes[id].size
	that.fixSize(id)

	return pivot
}

func (that *IndexSet) rotateLeft(id int32) int32 {
	pivot := that.nodes[id].right
	if pivot == nilNode {
		return id
	}

	that.nodes[id].right = that.nodes[pivot].left
	that.nodes[pivot].left = id
	that.nodes[pivot].size = that.nodes[id].size
	that.fixSize(id)

	return pivot
}

// insertRoot places key at the root of the subtree by inserting below and
// rotating it up.
func (that *IndexSet) insertRoot(id int32, key int) int32 {
	if id == nilNode {
		return that.alloc(key)
	}

	if key < that.nodes[id].key {
		left := that.insertRoot(that.nodes[id].left, key)
		that.nodes[id].left = left
		that.fixSize(id)
		return that.rotateRight(id)
	}

	right := that.insertRoot(that.nodes[id].right, key)
	that.nodes[id].right = right
	that.fixSize(id)

	return that.rotateLeft(id)
}

func (that *IndexSet) insert(id int32, key int) int32 {
	if id == nilNode {
		return that.alloc(key)
	}

	if that.rng.Intn(that.nodes[id].size+1) == 0 {
		return that.insertRoot(id, key)
	}

	if key < that.nodes[id].key {
		left := that.insert(that.nodes[id].left, key)
		that.nodes[id].left = left
	} else {
		right := that.insert(that.nodes[id].right, key)
		that.nodes[id].right = right
	}
	that.fixSize(id)

	return id
}

// join merges two subtrees where every key in p is less than every key in q.
// The root is drawn from p with probability size(p) / (size(p) + size(q)).
func (that *IndexSet) join(p, q int32) int32 {
	if p == nilNode {
		return q
	}
	if q == nilNode {
		return p
	}

	if that.rng.Intn(that.nodes[p].size+that.nodes[q].size) < that.nodes[p].size {
		right := that.join(that.nodes[p].right, q)
		that.nodes[p].right = right
		that.fixSize(p)
		return p
	}

	left := that.join(p, that.nodes[q].left)
	that.nodes[q].left = left
	that.fixSize(q)

	return q
}

func (that *IndexSet) remove(id int32, key int) int32 {
	if id == nilNode {
		return nilNode
	}

	n := that.nodes[id]
	if key == n.key {
		merged := that.join(n.left, n.right)
		that.release(id)
		return merged
	}

	if key < n.key {
		left := that.remove(n.left, key)
		that.nodes[id].left = left
	} else {
		right := that.remove(n.right, key)
		that.nodes[id].right = right
	}
	that.fixSize(id)

	return id
}
