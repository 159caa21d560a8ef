package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/linefall/input"
)

func TestKeymap(t *testing.T) {
	type key int

	km := input.NewKeymap[key]().
		Bind(input.MoveLeft, 1, 2).
		Bind(input.HardDrop, 3)
	assert.Equal(t, 3, km.Len())

	got, ok := km.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, input.MoveLeft, got)

	_, ok = km.Lookup(9)
	assert.False(t, ok)

	km.Bind(input.Rotate, 1)
	got, _ = km.Lookup(1)
	assert.Equal(t, input.Rotate, got)
	assert.Equal(t, 3, km.Len())

	km.Unbind(3)
	_, ok = km.Lookup(3)
	assert.False(t, ok)
	assert.Equal(t, 2, km.Len())
}

func TestRuneKeymap(t *testing.T) {
	km := input.RuneKeymap()

	tests := map[rune]input.Intent{
		'a': input.MoveLeft,
		'D': input.MoveRight,
		's': input.SoftDrop,
		'e': input.Rotate,
		'q': input.HardDrop,
		' ': input.HardDrop,
		'P': input.TogglePause,
		'r': input.Start,
	}
	for r, want := range tests {
		got, ok := km.Lookup(r)
		assert.True(t, ok, "rune %q", r)
		assert.Equal(t, want, got, "rune %q", r)
	}

	_, ok := km.Lookup('x')
	assert.False(t, ok)
}
