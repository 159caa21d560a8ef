//go:build !(js && wasm)

package main

import (
	"github.com/rs/zerolog"

	"github.com/plus3/linefall/tetris"
)

// The win banner is drawn from the session state; there is no page to open.
func newNavigator(page string, logger zerolog.Logger) tetris.Navigator {
	return tetris.NavigatorFunc(func() {
		logger.Info().Str("page", page).Msg("line goal reached")
	})
}
