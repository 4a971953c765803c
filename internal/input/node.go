package input

import (
	"fmt"

	"github.com/ja-he/pinpad/internal/control/action"
)

// Node is a node in a Tree.
// Intermediate nodes have children, leaves have an action, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// Child returns the child node for the given Key, or nil.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// IsLeaf returns whether the node terminates a sequence in an action.
func (n *Node) IsLeaf() bool {
	return n.Action != nil
}

// NewNode returns a pointer to a new intermediate Node.
func NewNode() *Node {
	return &Node{
		Children: make(map[Key]*Node),
	}
}

// NewLeaf returns a pointer to a new leaf Node for the given action.
func NewLeaf(action action.Action) *Node {
	return &Node{
		Action: action,
	}
}

// insert adds the action under the given key sequence below this node.
// A sequence that is a prefix of another, or extends another, conflicts with
// it, since one of them could never be entered.
func (n *Node) insert(sequence []Key, a action.Action) error {
	if len(sequence) == 0 {
		return fmt.Errorf("empty sequence")
	}
	current := n
	for i, key := range sequence {
		last := i == len(sequence)-1
		next, exists := current.Children[key]
		switch {
		case !exists && last:
			current.Children[key] = NewLeaf(a)
		case !exists:
			next = NewNode()
			current.Children[key] = next
		case last && next.IsLeaf():
			return fmt.Errorf("sequence mapped twice")
		case last:
			return fmt.Errorf("sequence is a prefix of a longer mapped sequence")
		case next.IsLeaf():
			return fmt.Errorf("sequence extends the mapped sequence '%s'", keysToConfigString(sequence[:i+1]))
		}
		current = next
	}
	return nil
}

func keysToConfigString(keys []Key) string {
	result := ""
	for _, k := range keys {
		result += ToConfigIdentifierString(k)
	}
	return result
}
