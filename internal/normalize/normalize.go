// Package normalize folds user-entered identifiers into a canonical form
// so lookups and uniqueness checks are case- and width-insensitive.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

var folder = cases.Fold()

// Email lowercases and trims an address. "  John.Doe@Mail.COM " and
// "john.doe@mail.com" compare equal after this.
func Email(email string) string {
	return folder.String(width.Narrow.String(strings.TrimSpace(email)))
}
