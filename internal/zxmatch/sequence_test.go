package zxmatch

import "testing"

func TestSequenceMatchAscendingLetters(t *testing.T) {
	matches := SequenceMatch("abcd")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %+v", matches)
	}
	m := matches[0]
	if m.Token != "abcd" || m.SequenceName != "lower" || !m.Ascending {
		t.Errorf("unexpected match: %+v", m)
	}
}

func TestSequenceMatchDescendingDigits(t *testing.T) {
	matches := SequenceMatch("9876")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %+v", matches)
	}
	m := matches[0]
	if m.Token != "9876" || m.SequenceName != "digits" || m.Ascending {
		t.Errorf("unexpected match: %+v", m)
	}
}

func TestSequenceMatchUppercase(t *testing.T) {
	matches := SequenceMatch("ZYXW")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %+v", matches)
	}
	if matches[0].SequenceName != "upper" {
		t.Errorf("SequenceName = %q, want upper", matches[0].SequenceName)
	}
}

func TestSequenceMatchNoRun(t *testing.T) {
	matches := SequenceMatch("xk7q")
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestSequenceMatchShortPassword(t *testing.T) {
	if matches := SequenceMatch("a"); matches != nil {
		t.Errorf("single-character password should have no matches, got %+v", matches)
	}
	if matches := SequenceMatch(""); matches != nil {
		t.Errorf("empty password should have no matches, got %+v", matches)
	}
	if matches := SequenceMatch("ab"); matches != nil {
		t.Errorf("2-character password is below the minimum run length, got %+v", matches)
	}
}

func TestSequenceMatchOverlappingRuns(t *testing.T) {
	// "abcbabc": an ascending "abc" at [0,2], then a descending "cba" at
	// [2,4] sharing its start with the first match's end, then another
	// ascending "abc" at [4,6]. These overlap and must all be reported,
	// since separate alphabet/direction passes don't coordinate with
	// each other.
	matches := SequenceMatch("abcbabc")
	if len(matches) != 3 {
		t.Fatalf("expected 3 overlapping matches, got %+v", matches)
	}

	want := []struct {
		i, j      int
		token     string
		ascending bool
	}{
		{0, 2, "abc", true},
		{2, 4, "cba", false},
		{4, 6, "abc", true},
	}
	for _, w := range want {
		found := false
		for _, m := range matches {
			if m.I == w.i && m.J == w.j && m.Token == w.token && m.Ascending == w.ascending {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing expected match %+v in %+v", w, matches)
		}
	}
}
