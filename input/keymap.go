package input

import "github.com/kamstrup/intmap"

// Keymap binds integer key codes of some backend to intents.
type Keymap[K intmap.IntKey] struct {
	bindings *intmap.Map[K, Intent]
}

// NewKeymap returns an empty keymap.
func NewKeymap[K intmap.IntKey]() *Keymap[K] {
	return &Keymap[K]{bindings: intmap.New[K, Intent](16)}
}

// Bind maps every key in keys to intent, replacing earlier bindings.
func (k *Keymap[K]) Bind(intent Intent, keys ...K) *Keymap[K] {
	for _, key := range keys {
		k.bindings.Put(key, intent)
	}
	return k
}

// Unbind removes key.
func (k *Keymap[K]) Unbind(key K) {
	k.bindings.Del(key)
}

// Lookup returns the intent bound to key.
func (k *Keymap[K]) Lookup(key K) (Intent, bool) {
	return k.bindings.Get(key)
}

// Len returns the number of bound keys.
func (k *Keymap[K]) Len() int {
	return k.bindings.Len()
}

// RuneKeymap returns the default letter bindings for terminals that report
// printable keys as runes. Both cases are bound.
func RuneKeymap() *Keymap[rune] {
	return NewKeymap[rune]().
		Bind(MoveLeft, 'a', 'A').
		Bind(MoveRight, 'd', 'D').
		Bind(SoftDrop, 's', 'S').
		Bind(Rotate, 'e', 'E').
		Bind(HardDrop, 'q', 'Q', ' ').
		Bind(TogglePause, 'p', 'P').
		Bind(Start, 'r', 'R')
}
