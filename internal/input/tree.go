package input

import (
	"fmt"
	"sort"

	"github.com/ja-he/pinpad/internal/control/action"
)

// Tree maps key sequences to actions and tracks a partially entered sequence.
//
//	mapping:                 tree:
//
//	"<c-k>"   -> keyboard    <c-k>        -> keyboard
//	"<c-x>q"  -> quit        <c-x>
//	"<c-x>l"  -> log         +-q          -> quit
//	                         +-l          -> log
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput advances the current sequence by the given key, performing the
// action if that completes a sequence.
// Returns whether the key applied. A key that fits no sequence does not apply
// and abandons any partial sequence.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.IsLeaf():
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether a sequence is partially entered, in which case
// the tree should get the next key before anyone else.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// ConstructInputTree constructs a Tree for the given mappings.
// Invalid keyspecs and conflicting sequences (one a prefix of the other) are
// errors, as they can stem from user configuration.
func ConstructInputTree(mappings map[Keyspec]action.Action) (*Tree, error) {
	keyspecs := make([]Keyspec, 0, len(mappings))
	for keyspec := range mappings {
		keyspecs = append(keyspecs, keyspec)
	}
	sort.Slice(keyspecs, func(i, j int) bool { return keyspecs[i] < keyspecs[j] })

	root := NewNode()
	for _, keyspec := range keyspecs {
		sequence, err := ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("invalid keyspec '%s' (%w)", keyspec, err)
		}
		if err := root.insert(sequence, mappings[keyspec]); err != nil {
			return nil, fmt.Errorf("can't map '%s' (%w)", keyspec, err)
		}
	}

	return &Tree{Root: root, Current: root}, nil
}

// EmptyTree returns a pointer to a tree without any sequences, e.g. to swallow
// all input without reacting.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{Root: root, Current: root}
}
