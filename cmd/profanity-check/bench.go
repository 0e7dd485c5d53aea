package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"profanity/internal/core/filter"
)

const (
	smallClean   = "Hello world, this is a clean text."
	smallProfane = "Hello world, this is a damn profane text."
)

// largeText joins size words drawn with a fixed seed so runs compare
func largeText(size int, profane bool) string {
	words := []string{"hello", "world", "foo", "bar", "baz", "qux"}
	if profane {
		words = []string{"hello", "world", "arse", "shite", "damn", "bugger"}
	}
	rng := rand.New(rand.NewPCG(1, 2))
	out := make([]string, size)
	for i := range out {
		out[i] = words[rng.IntN(len(words))]
	}
	return strings.Join(out, " ")
}

type scenario struct {
	name string
	fn   func()
}

func scenarios() []scenario {
	whole := filter.MustNew()
	partial := filter.MustNew(filter.WithWholeWord(false))
	// compile before timing
	_, _ = whole.Exists("foo")
	_, _ = partial.Exists("bar")

	largeClean, largeProfane := largeText(1000, false), largeText(1000, true)
	exists := func(f *filter.Filter, s string) func() { return func() { _, _ = f.Exists(s) } }
	censor := func(f *filter.Filter, s string, ct filter.CensorType) func() {
		return func() { _, _ = f.Censor(s, ct) }
	}

	return []scenario{
		{"exists - small clean text", exists(whole, smallClean)},
		{"exists - small profane text", exists(whole, smallProfane)},
		{"exists - large clean text", exists(whole, largeClean)},
		{"exists - large profane text", exists(whole, largeProfane)},
		{"exists - partial match, small profane text", exists(partial, smallProfane)},
		{"censor - word, small profane text", censor(whole, smallProfane, filter.CensorWord)},
		{"censor - first_char, small profane text", censor(whole, smallProfane, filter.CensorFirstChar)},
		{"censor - first_vowel, small profane text", censor(whole, smallProfane, filter.CensorFirstVowel)},
		{"censor - all_vowels, small profane text", censor(whole, smallProfane, filter.CensorAllVowels)},
		{"censor - word, large profane text", censor(whole, largeProfane, filter.CensorWord)},
		{"censor - partial match, word, small profane text", censor(partial, smallProfane, filter.CensorWord)},
	}
}

func bench(w io.Writer) {
	fastest, best := "", 0.0
	for _, sc := range scenarios() {
		res := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				sc.fn()
			}
		})
		ops := 0.0
		if ns := res.NsPerOp(); ns > 0 {
			ops = 1e9 / float64(ns)
		}
		fmt.Fprintf(w, "%-52s %12.0f ops/sec %10d ns/op %6d allocs/op\n", sc.name, ops, res.NsPerOp(), res.AllocsPerOp())
		if ops > best {
			fastest, best = sc.name, ops
		}
	}
	fmt.Fprintf(w, "Fastest: %s\n", fastest)
}
