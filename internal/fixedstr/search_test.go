package fixedstr

import "testing"

func TestFind(t *testing.T) {
	s := mustBytes(t, 32, "the quick brown fox jumps")

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Find", s.Find([]byte("o"), 0), 12},
		{"Find from pos", s.Find([]byte("o"), 13), 17},
		{"Find missing", s.Find([]byte("cat"), 0), Npos},
		{"Find past end", s.Find([]byte("t"), 40), Npos},
		{"Find empty at end", s.Find(nil, s.Size()), s.Size()},
		{"FindString", s.FindString("fox", 0), 16},
		{"FindChar", s.FindChar('q', 0), 4},
		{"FindChar negative", s.FindChar('q', -1), Npos},
		{"RFind", s.RFind([]byte("o"), Npos+1000), 17},
		{"RFind bounded", s.RFind([]byte("o"), 16), 12},
		{"RFind word", s.RFind([]byte("the"), 0), 0},
		{"RFindChar", s.RFindChar('u', 100), 21},
		{"RFindChar bounded", s.RFindChar('u', 20), 5},
		{"FindFirstOf", s.FindFirstOf([]byte("xyz"), 0), 18},
		{"FindFirstNotOf", s.FindFirstNotOf([]byte("the "), 0), 4},
		{"FindLastOf", s.FindLastOf([]byte("aeiou"), 100), 21},
		{"FindLastNotOf", s.FindLastNotOf([]byte("spmu"), 100), 20},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}
}

func TestFindOnEmpty(t *testing.T) {
	s := New[byte](4)
	if s.RFindChar('a', 3) != Npos || s.FindLastOf([]byte("a"), 0) != Npos || s.FindLastNotOf([]byte("a"), 0) != Npos {
		t.Error("backward searches on an empty string must return Npos")
	}
	if s.Find(nil, 0) != 0 {
		t.Error("empty needle matches at 0")
	}
}

func TestAffixes(t *testing.T) {
	s := mustBytes(t, 16, "config.toml")

	if !s.StartsWith([]byte("config")) || s.StartsWith([]byte("toml")) {
		t.Error("StartsWith mismatch")
	}
	if !s.EndsWith([]byte(".toml")) || s.EndsWith([]byte(".yaml")) {
		t.Error("EndsWith mismatch")
	}
	if s.StartsWith([]byte("config.toml.bak")) || s.EndsWith([]byte("my.config.toml")) {
		t.Error("affix longer than the string must not match")
	}
	if !s.Contains([]byte("g.t")) || s.Contains([]byte("yaml")) {
		t.Error("Contains mismatch")
	}
}

func TestCompare(t *testing.T) {
	s := mustBytes(t, 8, "abc")

	if s.Compare([]byte("abc")) != 0 || !s.Equal([]byte("abc")) {
		t.Error("expected equal")
	}
	if s.Compare([]byte("abd")) != -1 || s.Compare([]byte("ab")) != 1 {
		t.Error("ordering mismatch")
	}
	if s.EqualString("abcd") || !s.EqualString("abc") {
		t.Error("EqualString mismatch")
	}
}
