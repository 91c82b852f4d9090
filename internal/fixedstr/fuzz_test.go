package fixedstr

import (
	"math/rand"
	"testing"
	"testing/quick"
)

// FuzzReplace checks Replace against the string model, with the source taken
// either from outside or from the string's own storage.
func FuzzReplace(f *testing.F) {
	f.Add("abcdef", uint8(10), uint8(1), uint8(3), "xyz", false, uint8(2), uint8(5))
	f.Add("abcdef", uint8(10), uint8(1), uint8(3), "", true, uint8(2), uint8(5))
	f.Add("abcdefgh", uint8(8), uint8(0), uint8(0), "", true, uint8(6), uint8(8))
	f.Add("Hello", uint8(8), uint8(2), uint8(2), "XX", false, uint8(0), uint8(0))
	f.Add("", uint8(0), uint8(0), uint8(0), "a", false, uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, init string, n, first, last uint8, src string, alias bool, srcFirst, srcEnd uint8) {
		s := New[byte](int(n), WithTruncationTracking())
		_ = s.AssignString(init)
		content := s.String()

		a, b := int(first), int(last)
		if a > len(content) || b > len(content) || a > b {
			return
		}

		source := []byte(src)
		if alias {
			sa, sb := int(srcFirst), int(srcEnd)
			if sa > sb || sb > len(content) {
				return
			}
			src = content[sa:sb]
			source = s.Data()[sa:sb]
		}

		want, truncated := spliceModel(content, int(n), a, b, src)
		s.ClearTruncated()
		if err := s.Replace(a, b, source); err != nil {
			t.Fatalf("replace failed: %v", err)
		}
		if got := s.String(); got != want {
			t.Errorf("Replace(%d, %d, %q) on %q: expected %q, got %q", a, b, src, content, want, got)
		}
		if s.Truncated() != truncated {
			t.Errorf("expected truncated=%v, got %v", truncated, s.Truncated())
		}
		checkInvariants(t, s)
	})
}

// applyRandomEdit performs one random mutation on s and the same mutation on
// the model, returning the new model.
func applyRandomEdit(rng *rand.Rand, s *Bytes, model string) string {
	n := s.Capacity()
	clamp := func(v string) string {
		if len(v) > n {
			return v[:n]
		}
		return v
	}
	word := []byte("abcdefghij"[:rng.Intn(10)])
	pos := rng.Intn(len(model) + 1)
	end := pos + rng.Intn(len(model)-pos+1)

	switch rng.Intn(7) {
	case 0:
		_ = s.Insert(pos, word)
		return clamp(model[:pos] + string(word) + model[pos:])
	case 1:
		_ = s.Erase(pos, end)
		return model[:pos] + model[end:]
	case 2:
		_ = s.Append(word)
		return clamp(model + string(word))
	case 3:
		_ = s.Replace(pos, end, word)
		return clamp(model[:pos] + string(word) + model[end:])
	case 4:
		// Self-referencing replace.
		src := model[pos:end]
		at := rng.Intn(len(model) + 1)
		_ = s.Replace(at, at, s.Data()[pos:end])
		return clamp(model[:at] + src + model[at:])
	case 5:
		_ = s.PushBack('!')
		return clamp(model + "!")
	default:
		if len(model) == 0 {
			return model
		}
		_ = s.PopBack()
		return model[:len(model)-1]
	}
}

func TestRandomEditsMatchModel(t *testing.T) {
	check := func(seed int64, size uint8) bool {
		rng := rand.New(rand.NewSource(seed))
		s := New[byte](int(size % 40))
		model := ""
		for i := 0; i < 50; i++ {
			model = applyRandomEdit(rng, s, model)
			if s.String() != model {
				t.Logf("seed %d step %d: expected %q, got %q", seed, i, model, s.String())
				return false
			}
			if s.Size() > s.Capacity() || s.data[s.Size()] != 0 {
				t.Logf("seed %d step %d: invariant broken", seed, i)
				return false
			}
		}
		return true
	}
	if err := quick.Check(check, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}
