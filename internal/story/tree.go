package story

import (
	"fmt"

	"github.com/feralgames/go-wolfpack/internal/storage"
)

// RootID is the node id every campaign starts from.
const RootID = 0

// Tree is the decision tree plus the player's current position in it.
// The node graph is immutable once built; only the current pointer moves.
type Tree struct {
	root    *Node
	current *Node
}

// NewTree creates a tree rooted at root, positioned at the root.
func NewTree(root *Node) *Tree {
	return &Tree{root: root, current: root}
}

// BuildTree links the node specs in the store into a Tree. The spec with
// id RootID becomes the root. Child references must resolve to loaded
// specs and int ids must be unique.
func BuildTree(store storage.Storer[*NodeSpec]) (*Tree, error) {
	specs := store.GetAll()

	nodes := make(map[string]*Node, len(specs))
	seen := make(map[int]string, len(specs))
	for id, spec := range specs {
		if prev, ok := seen[spec.ID]; ok {
			return nil, fmt.Errorf("duplicate node id %d in %q and %q", spec.ID, prev, id)
		}
		seen[spec.ID] = id
		nodes[id] = spec.node()
	}

	var root *Node
	for id, spec := range specs {
		n := nodes[id]
		if spec.Left != "" {
			child, ok := nodes[spec.Left.String()]
			if !ok {
				return nil, fmt.Errorf("node %q: left child %q not found", id, spec.Left)
			}
			n.Left = child
		}
		if spec.Right != "" {
			child, ok := nodes[spec.Right.String()]
			if !ok {
				return nil, fmt.Errorf("node %q: right child %q not found", id, spec.Right)
			}
			n.Right = child
		}
		if spec.ID == RootID {
			root = n
		}
	}

	if root == nil {
		return nil, fmt.Errorf("no root node (id %d)", RootID)
	}

	return NewTree(root), nil
}

// Current returns the node the player is at.
func (t *Tree) Current() *Node {
	return t.current
}

// AtEnding reports whether the player has reached an ending node.
func (t *Tree) AtEnding() bool {
	return t.current != nil && t.current.Ending
}

// MoveLeft descends to the left child (choice A). Moving from an ending
// node, or where no left child exists, is a silent no-op.
func (t *Tree) MoveLeft() {
	if t.current == nil || t.current.Ending || t.current.Left == nil {
		return
	}
	t.current = t.current.Left
}

// MoveRight descends to the right child (choice B). Moving from an
// ending node, or where no right child exists, is a silent no-op.
func (t *Tree) MoveRight() {
	if t.current == nil || t.current.Ending || t.current.Right == nil {
		return
	}
	t.current = t.current.Right
}

// SetCurrent repositions the player at the node with the given id, used
// when restoring a saved session. Returns ErrNodeNotFound, leaving the
// position unchanged, if no node has that id.
func (t *Tree) SetCurrent(id int) error {
	n := find(t.root, id)
	if n == nil {
		return ErrNodeNotFound
	}
	t.current = n
	return nil
}

// find does a depth-first search for the node with the given id.
func find(n *Node, id int) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	if found := find(n.Left, id); found != nil {
		return found
	}
	return find(n.Right, id)
}
