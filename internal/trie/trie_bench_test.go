package trie

import (
	"math/rand"
	"testing"
)

func generateRandomWords(count, maxLength int) []string {
	words := make([]string, count)
	for i := range count {
		length := rand.Intn(maxLength) + 1
		word := make([]rune, length)
		for j := range length {
			word[j] = rune('a' + rand.Intn(26))
		}
		words[i] = string(word)
	}
	return words
}

func BenchmarkInsert(b *testing.B) {
	sizes := []struct {
		name      string
		count     int
		maxLength int
	}{
		{"Small", 100, 5},
		{"Medium", 1000, 10},
		{"Large", 10000, 20},
	}

	for _, size := range sizes {
		words := generateRandomWords(size.count, size.maxLength)
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tr := New()
				for _, w := range words {
					tr.Insert(w)
				}
			}
		})
	}
}

func BenchmarkComplete(b *testing.B) {
	tr := New()
	for _, w := range generateRandomWords(10000, 12) {
		tr.Insert(w)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Complete(string(rune('a' + i%26)))
	}
}
