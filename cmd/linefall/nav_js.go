//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/plus3/linefall/tetris"
)

func newNavigator(page string, logger zerolog.Logger) tetris.Navigator {
	return tetris.NavigatorFunc(func() {
		logger.Info().Str("page", page).Msg("line goal reached, navigating")
		js.Global().Call("alert", "Congrats! You cleared 12 lines! HUMANDA KA!!")
		js.Global().Get("location").Set("href", page)
	})
}
