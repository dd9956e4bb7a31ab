package indexset

// Node is a read-only view of one tree node. It does not own the node and is
// only valid until the next mutation of the set it came from.
type Node struct {
	set *IndexSet
	id  int32
}

func (n Node) Key() int {
	return n.set.nodes[n.id].key
}

// Size is the number of keys in the subtree rooted at n.
func (n Node) Size() int {
	return n.set.nodes[n.id].size
}

func (n Node) Left() (Node, bool) {
	return n.child(n.set.nodes[n.id].left)
}

func (n Node) Right() (Node, bool) {
	return n.child(n.set.nodes[n.id].right)
}

func (n Node) child(id int32) (Node, bool) {
	if id == nilNode {
		return Node{}, false
	}

	return Node{set: n.set, id: id}, true
}
