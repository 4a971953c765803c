package input

import (
	"sort"
	"strings"
)

// Help maps key sequences (in config identifier notation) to explanations of
// the actions they trigger.
type Help map[string]string

// HelpEntry is an explanation with all the sequences that trigger it.
type HelpEntry struct {
	Sequences   []string
	Explanation string
}

// Keys returns the entry's sequences in a single line.
func (e HelpEntry) Keys() string {
	return strings.Join(e.Sequences, " ")
}

// Entries groups the help by explanation, since several sequences are often
// mapped to the same action (e.g. <bs> and <del> both deleting a symbol).
// Entries and their sequences are sorted.
func (h Help) Entries() []HelpEntry {
	byExplanation := map[string][]string{}
	for sequence, explanation := range h {
		byExplanation[explanation] = append(byExplanation[explanation], sequence)
	}

	result := make([]HelpEntry, 0, len(byExplanation))
	for explanation, sequences := range byExplanation {
		sort.Strings(sequences)
		result = append(result, HelpEntry{Sequences: sequences, Explanation: explanation})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Explanation < result[j].Explanation })
	return result
}

// GetHelp returns the input help map for this tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// GetHelp returns the input help for all sequences below this node.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.IsLeaf() {
		result[""] = n.Action.Explain()
		return result
	}
	for k, c := range n.Children {
		for partialSequence, explanation := range c.GetHelp() {
			result[ToConfigIdentifierString(k)+partialSequence] = explanation
		}
	}
	return result
}
