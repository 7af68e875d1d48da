package cache

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// punctuation is the ASCII punctuation set stripped from both ends of a
// derived cache name, so e.g. a computation named __call__ caches as call.
// Interior punctuation is preserved.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// maxNameLen caps the derived name so the stored filename stays well under
// common filesystem limits once the entry suffix is appended. Autodetected
// comments can otherwise grow without bound.
const maxNameLen = 200

// KeyNamer derives the on-disk cache name for a wrapped computation.
// It is responsible for producing stable names across calls and runs.
type KeyNamer interface {
	CacheName(fn, comment string) string
}

// defaultKeyNamer implements the standard naming policy: the function name,
// an underscore plus the comment when one is present, ASCII punctuation
// trimmed from both ends, overlong names folded into an xxhash digest.
type defaultKeyNamer struct{}

// NewDefaultKeyNamer creates a new instance of the default key namer.
func NewDefaultKeyNamer() KeyNamer {
	return &defaultKeyNamer{}
}

// CacheName builds the cache name for fn with an optional comment.
func (n *defaultKeyNamer) CacheName(fn, comment string) string {
	name := fn
	if comment != "" {
		name += "_" + comment
	}
	name = strings.Trim(name, punctuation)
	return fitName(name)
}

// fitName shortens overlong names while keeping them unique and mostly
// readable: a head of the original plus a digest of the whole.
func fitName(name string) string {
	if len(name) <= maxNameLen {
		return name
	}

	digest := fmt.Sprintf("%016x", xxhash.Sum64String(name))
	head := name[:maxNameLen-len(digest)-1]

	// Truncation may have split a multi-byte rune.
	for len(head) > 0 {
		if r, size := utf8.DecodeLastRuneInString(head); r != utf8.RuneError || size > 1 {
			break
		}
		head = head[:len(head)-1]
	}

	return head + "-" + digest
}

// DetectArgTokens extracts the call-argument values that participate in
// cache naming when autodetection is enabled: values whose dynamic type is
// exactly string come first, then integer and float values. Booleans are
// intentionally excluded so flag-like arguments never fork the cache.
func DetectArgTokens(args ...any) []string {
	var tokens []string

	for _, a := range args {
		if s, ok := a.(string); ok {
			tokens = append(tokens, s)
		}
	}

	for _, a := range args {
		if _, ok := a.(string); ok {
			continue
		}
		switch rv := reflect.ValueOf(a); rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			tokens = append(tokens, strconv.FormatInt(rv.Int(), 10))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			tokens = append(tokens, strconv.FormatUint(rv.Uint(), 10))
		case reflect.Float32:
			tokens = append(tokens, strconv.FormatFloat(rv.Float(), 'g', -1, 32))
		case reflect.Float64:
			tokens = append(tokens, strconv.FormatFloat(rv.Float(), 'g', -1, 64))
		}
	}

	return tokens
}
