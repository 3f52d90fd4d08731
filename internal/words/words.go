// Package words provides the static word list the game draws from.
//
// The list is embedded in the binary, so loading cannot fail at
// runtime; an empty or malformed embed is caught by the package tests.
package words

import (
	"crypto/rand"
	_ "embed"
	"math/big"
	"strings"
	"sync"
)

//go:embed words.txt
var embedded string

var (
	once sync.Once
	list []string
)

// load parses the embedded list: one word per line, lower-cased, blank
// lines skipped.
func load() {
	for _, line := range strings.Split(embedded, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		list = append(list, w)
	}
}

// List returns a copy of the word list in file order.
func List() []string {
	once.Do(load)
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Count returns the number of candidate words.
func Count() int {
	once.Do(load)
	return len(list)
}

// Random returns a word chosen uniformly at random from the list.
func Random() string {
	once.Do(load)
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken;
		// fall back to the first word rather than crash a game.
		return list[0]
	}
	return list[n.Int64()]
}

// Contains reports whether w is in the list (case-insensitive).
func Contains(w string) bool {
	once.Do(load)
	w = strings.ToLower(w)
	for _, have := range list {
		if have == w {
			return true
		}
	}
	return false
}

// Lengths returns the shortest and longest word lengths in the list.
func Lengths() (minLen, maxLen int) {
	once.Do(load)
	for _, w := range list {
		n := len(w)
		if minLen == 0 || n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}
	return minLen, maxLen
}
