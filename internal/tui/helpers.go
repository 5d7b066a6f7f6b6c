package tui

import (
	"strings"

	"github.com/javiermolinar/figaro/internal/api"
)

// userMessage turns a backend error into a status line string.
func userMessage(err error) string {
	return api.UserMessage(err)
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
