// Package keysource loads the ordered byte-string key sequences that feed
// the trie matrix and double array builders.
package keysource

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// Load reads path one line at a time and returns each line verbatim as
// bytes, newline stripped. Empty lines yield the empty key. The last line
// may omit its terminator. Duplicate lines are permitted; callers that
// build a trie treat them as a single occurrence.
func Load(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "keysource: open %s", path)
	}
	defer f.Close()

	var keys [][]byte
	scanner := bufio.NewScanner(f)
	// Key lines (e.g. long dictionary entries) may exceed the default
	// 64KiB token limit; give the scanner room to grow.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		key := make([]byte, len(line))
		copy(key, line)
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "keysource: read %s", path)
	}
	return keys, nil
}
