// Package text provides help text formatting for CLI commands.
package text

import (
	"strings"
)

// Indentation is the standard indentation for CLI help text.
const Indentation = `  `

// LongDesc trims a command's long description and strips the common leading indentation of its
// lines, so descriptions can be written as indented raw strings in source.
func LongDesc(s string) string {
	return strings.Join(dedent(s), "\n")
}

// Examples dedents a command's examples and indents every line by [Indentation].
func Examples(s string) string {
	lines := dedent(s)
	for i, l := range lines {
		if l != "" {
			lines[i] = Indentation + l
		}
	}

	return strings.Join(lines, "\n")
}

func dedent(s string) []string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}

	prefix := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if prefix < 0 || n < prefix {
			prefix = n
		}
	}

	for i, l := range lines {
		if len(l) >= prefix {
			l = l[prefix:]
		}
		lines[i] = strings.TrimRight(l, " \t")
	}

	return lines
}
