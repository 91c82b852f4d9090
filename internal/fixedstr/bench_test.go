package fixedstr

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkAppend(b *testing.B) {
	s := New[byte](4096)
	word := []byte("benchmark ")
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if s.Available() < len(word) {
			s.Clear()
		}
		_ = s.Append(word)
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	sizes := []int{64, 1024, 16384}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			s := New[byte](size)
			_ = s.AssignString(strings.Repeat("a", size/2))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = s.InsertString(s.Size()/2, "xy")
				_ = s.Erase(s.Size()/2, s.Size()/2+2)
			}
		})
	}
}

func BenchmarkSelfReplace(b *testing.B) {
	s := New[byte](1024)
	_ = s.AssignString(strings.Repeat("abcdefgh", 64))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Replace(10, 20, s.Data()[15:40])
		_ = s.Erase(10, 25)
	}
}

func BenchmarkFind(b *testing.B) {
	s := New[byte](4096)
	_ = s.AssignString(strings.Repeat("the quick brown fox ", 200) + "needle")
	needle := []byte("needle")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if s.Find(needle, 0) == Npos {
			b.Fatal("needle not found")
		}
	}
}
