package zxcdata

import "testing"

func TestBuildRankedDictAssignsSequentialRanks(t *testing.T) {
	d := BuildRankedDict([]string{"password", "letmein", "qwerty"})
	if d["password"] != 1 || d["letmein"] != 2 || d["qwerty"] != 3 {
		t.Errorf("unexpected ranks: %+v", d)
	}
}

func TestBuildRankedDictKeepsFirstRankOnDuplicate(t *testing.T) {
	d := BuildRankedDict([]string{"password", "letmein", "password"})
	if d["password"] != 1 {
		t.Errorf("rank for duplicate word = %d, want 1 (first occurrence kept)", d["password"])
	}
}

func TestWithUserInputsLowercasesAndRanks(t *testing.T) {
	dicts := WithUserInputs([]any{"Alice", "Bob"})
	ui, ok := dicts[DictUserInputs]
	if !ok {
		t.Fatal("expected a user_inputs dictionary")
	}
	if ui["alice"] != 1 || ui["bob"] != 2 {
		t.Errorf("unexpected ranks: %+v", ui)
	}
}

func TestWithUserInputsIncludesBuiltins(t *testing.T) {
	dicts := WithUserInputs(nil)
	for _, name := range []string{DictPasswords, DictEnglish, DictSurnames, DictMaleNames, DictFemaleNames} {
		if _, ok := dicts[name]; !ok {
			t.Errorf("expected built-in dictionary %q to be present", name)
		}
	}
	if _, ok := dicts[DictUserInputs]; ok {
		t.Error("no user_inputs dictionary should be created for nil input")
	}
}

func TestWithUserInputWordsSkipsEmpty(t *testing.T) {
	dicts := WithUserInputWords(nil)
	if _, ok := dicts[DictUserInputs]; ok {
		t.Error("no user_inputs dictionary should be created for an empty word list")
	}
}

func TestNormalizeUserInputsConvertsTypes(t *testing.T) {
	out := NormalizeUserInputs([]any{"Hello", 42, true, 3.14})
	want := []string{"hello", "42", "true"}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestNormalizeUserInputsDropsUnsupportedTypes(t *testing.T) {
	type weird struct{}
	out := NormalizeUserInputs([]any{weird{}, "ok"})
	if len(out) != 1 || out[0] != "ok" {
		t.Errorf("expected unsupported types to be dropped, got %v", out)
	}
}
