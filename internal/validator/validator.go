// Package validator checks resolved language codes against the supported list.
package validator

import (
	"errors"

	"github.com/valpere/gtran/internal/languages"
)

// Validation failures. The error text is the exact line shown to the user.
var (
	ErrSourceNotAllowed = errors.New("Input language is not allowed. Type --help to see allowed languages")
	ErrTargetNotAllowed = errors.New("Output language is not allowed. Type --help to see allowed languages")
)

// Validate confirms both language codes belong to the supported list. The
// source code is checked first; when it fails, the target code is never
// inspected. Matching is case-sensitive.
func Validate(sourceLang, targetLang string) error {
	if !languages.IsAllowed(sourceLang) {
		return ErrSourceNotAllowed
	}
	if !languages.IsAllowed(targetLang) {
		return ErrTargetNotAllowed
	}
	return nil
}
