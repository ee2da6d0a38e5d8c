package zxmatch

import "testing"

func TestReverseDictionaryMatchFindsReversedWord(t *testing.T) {
	dicts := dictsFor([]string{"drowssap"})
	matches := ReverseDictionaryMatch("password", dicts)

	found := false
	for _, m := range matches {
		if m.Token == "password" && m.Reversed && m.MatchedWord == "drowssap" {
			found = true
			if m.I != 0 || m.J != 7 {
				t.Errorf("span = [%d,%d], want [0,7]", m.I, m.J)
			}
		}
	}
	if !found {
		t.Fatalf("expected a reversed match for 'password', got %+v", matches)
	}
}

func TestReverseDictionaryMatchEmptyPassword(t *testing.T) {
	dicts := dictsFor([]string{"a"})
	matches := ReverseDictionaryMatch("", dicts)
	if len(matches) != 0 {
		t.Errorf("expected no matches for empty password, got %+v", matches)
	}
}

func TestReverseDictionaryMatchNoHit(t *testing.T) {
	dicts := dictsFor([]string{"zzz"})
	matches := ReverseDictionaryMatch("abcdef", dicts)
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}
