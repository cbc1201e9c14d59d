package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// refNameChars is stricter than git-check-ref-format: names end up in
// commit messages and log lines, so only a plain character set is allowed
var refNameChars = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// ValidateRefName checks a branch or remote name the user configured.
// kind names the setting in error messages.
func ValidateRefName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s cannot be empty", kind)
	}
	if name == "@" {
		return fmt.Errorf("%s cannot be '@'", kind)
	}

	for _, prefix := range []string{".", "/", "-"} {
		if strings.HasPrefix(name, prefix) {
			return fmt.Errorf("%s cannot start with '%s'", kind, prefix)
		}
	}
	for _, suffix := range []string{".lock", ".", "/"} {
		if strings.HasSuffix(name, suffix) {
			return fmt.Errorf("%s cannot end with '%s'", kind, suffix)
		}
	}
	for _, seq := range []string{"..", "//", "@{"} {
		if strings.Contains(name, seq) {
			return fmt.Errorf("%s cannot contain '%s'", kind, seq)
		}
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s cannot contain control characters", kind)
		}
	}
	if !refNameChars.MatchString(name) {
		return fmt.Errorf("%s %q contains invalid characters (only alphanumeric, '.', '_', '-', '/' allowed)", kind, name)
	}
	return nil
}
