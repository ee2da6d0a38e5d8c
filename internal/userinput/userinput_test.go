package userinput

import "testing"

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestExpandIncludesOriginalValue(t *testing.T) {
	out := Expand([]string{"john"})
	if !contains(out, "john") {
		t.Errorf("expected original value to be included, got %v", out)
	}
}

func TestExpandSplitsDottedName(t *testing.T) {
	out := Expand([]string{"john.doe"})
	for _, want := range []string{"john.doe", "john", "doe"} {
		if !contains(out, want) {
			t.Errorf("expected %q in %v", want, out)
		}
	}
}

func TestExpandSplitsHyphenAndUnderscore(t *testing.T) {
	out := Expand([]string{"mary-jane_smith"})
	for _, want := range []string{"mary", "jane", "smith"} {
		if !contains(out, want) {
			t.Errorf("expected %q in %v", want, out)
		}
	}
}

func TestExpandEmailProducesLocalAndDomainLabels(t *testing.T) {
	out := Expand([]string{"john.doe@acme.com"})
	for _, want := range []string{"john.doe@acme.com", "john.doe", "john", "doe", "acme", "com"} {
		if !contains(out, want) {
			t.Errorf("expected %q in %v", want, out)
		}
	}
}

func TestExpandEmailWithHyphenatedDomain(t *testing.T) {
	out := Expand([]string{"user@my-company.com"})
	for _, want := range []string{"my-company", "my", "company"} {
		if !contains(out, want) {
			t.Errorf("expected %q in %v", want, out)
		}
	}
}

func TestExpandDeduplicates(t *testing.T) {
	out := Expand([]string{"john", "john"})
	count := 0
	for _, v := range out {
		if v == "john" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected \"john\" to appear once, appeared %d times in %v", count, out)
	}
}

func TestExpandTrimsWhitespaceAndSkipsEmpty(t *testing.T) {
	out := Expand([]string{"  john  ", "", "   "})
	if len(out) != 1 || out[0] != "john" {
		t.Errorf("got %v, want [\"john\"]", out)
	}
}

func TestExpandEmptyInput(t *testing.T) {
	out := Expand(nil)
	if len(out) != 0 {
		t.Errorf("expected no tokens, got %v", out)
	}
}
