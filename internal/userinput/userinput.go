// Package userinput expands caller-supplied context values (usernames,
// email addresses, names) into the individual tokens the user_inputs
// ranked dictionary should contain. An email address contributes its
// local part, domain labels, and the whole address; a dotted/hyphenated
// name contributes its pieces too, so "john.doe@acme.com" strengthens
// matching against "john", "doe", "acme", and "com", not just the
// address as a single opaque string.
//
// The decomposition feeds internal/zxcdata's per-call user_inputs
// dictionary, so a matcher scanning the password can recognize any of
// these tokens, not just the caller's original literal value.
package userinput

import "strings"

// Expand takes the raw values passed to Analyze and returns every token
// they should contribute to the user_inputs dictionary, in the order
// discovered (earliest, most-specific tokens keep the better rank when
// internal/zxcdata.BuildRankedDict collapses duplicates).
func Expand(raw []string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, v := range raw {
		add(v)
		for _, part := range splitWords(v) {
			add(part)
		}
	}
	return out
}

// splitWords extracts the constituent words of a single context value.
func splitWords(word string) []string {
	if strings.Contains(word, "@") {
		return splitEmail(word)
	}

	parts := []string{word}
	for _, sep := range []string{".", "-", "_", " "} {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}
		parts = next
	}

	seen := make(map[string]bool)
	var unique []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" && p != word && !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	return unique
}

// splitEmail extracts the local part, each domain label, and any
// hyphen/underscore-separated pieces within them.
func splitEmail(email string) []string {
	at := strings.SplitN(email, "@", 2)
	if len(at) != 2 {
		return []string{email}
	}
	local, domain := at[0], at[1]

	var result []string
	result = append(result, local)
	result = append(result, strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})...)

	for _, label := range strings.Split(domain, ".") {
		result = append(result, label)
		if strings.ContainsAny(label, "-_") {
			result = append(result, strings.FieldsFunc(label, func(r rune) bool {
				return r == '-' || r == '_'
			})...)
		}
	}

	seen := make(map[string]bool)
	var unique []string
	for _, p := range result {
		p = strings.TrimSpace(p)
		if p != "" && !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	return unique
}
