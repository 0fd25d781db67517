package serverutils

import "github.com/gofiber/fiber/v2"

const defaultSessionID = "local"

// SessionID identifies the caller's UI session for selection state.
// Desktop builds run a single session and omit the header.
func SessionID(ctx *fiber.Ctx) string {
	if id := ctx.Get("X-Session-Id"); id != "" {
		return id
	}
	return defaultSessionID
}
