package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press, as relevant to input processing.
// Runes carry their character, other keys only their tcell key.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// KeyFromTcellEvent converts a tcell.EventKey to a Key.
// Modifiers are dropped, as tcell already folds <c-…> into the key; everything
// received from tcell has to go through this to match configured sequences.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// ToDebugString returns a representation of the key for logging.
func (k *Key) ToDebugString() string {
	return fmt.Sprintf("(%s (%d),'%s'(%d))", tcell.KeyNames[k.Key], int(k.Key), string(k.Ch), int(k.Ch))
}

// IsRune returns whether the key is a character (as opposed to, e.g., ESC).
func (k Key) IsRune() bool { return k.Key == tcell.KeyRune }
