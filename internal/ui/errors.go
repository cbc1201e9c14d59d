package ui

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gitartist/internal/domain"
	"gitartist/internal/theme"
)

const (
	errorPrefix    = "Error: "
	hintPrefix     = "Hint: "
	maxErrorWidth  = 100
	truncationMark = "..."
)

// remediations is checked in order; the first matching sentinel wins
var remediations = []struct {
	err  error
	hint string
}{
	{domain.ErrMissingCredentials, "Set GOOGLE_API_KEY (and GITHUB_PAT to create repositories) in the environment or in a .env file."},
	{domain.ErrHostAuth, "Check that GITHUB_PAT is valid and allowed to create repositories."},
	{domain.ErrRepositoryExists, "Pick another name, or register the existing clone with `gitartist repos add <path>`."},
	{domain.ErrDirectoryExists, "Pick another name or move the existing directory out of the way."},
	{domain.ErrNothingToUndo, "Only the most recent drawing can be undone, and only once."},
	{domain.ErrPushFailed, "The commits are still in the local repository. Check the remote and credentials, then run `git push --force`."},
	{domain.ErrInvalidAuthor, "Enter a name and a valid email, or set author_name and author_email in settings.json."},
	{domain.ErrRepositoryNotFound, "Register the repository with `gitartist repos add <path>`."},
	{domain.ErrUnknownShape, "Run `gitartist shapes` to list the built-in shapes."},
	{domain.ErrInvalidPixel, "Check the template: pixels are [week, day 0-6, density 1-4]."},
	{context.Canceled, "The drawing was interrupted. Run undo to remove the partial drawing."},
}

// Remediation returns a hint telling the user how to recover from err
func Remediation(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range remediations {
		if errors.Is(err, r.err) {
			return r.hint
		}
	}
	return "Run again with --debug and check the log file for details."
}

// FormatError renders an error and its remediation hint for the terminal
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.ErrorStyle.Render(truncate(errorPrefix+err.Error(), maxErrorWidth)))
	b.WriteString("\n")
	b.WriteString(theme.HintTextStyle.Render(hintPrefix + Remediation(err)))
	return b.String()
}

// truncate shortens s to at most width runes, marking the cut
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	keep := width - utf8.RuneCountInString(truncationMark)
	if keep < 1 {
		keep = 1
	}
	return string(runes[:keep]) + truncationMark
}
