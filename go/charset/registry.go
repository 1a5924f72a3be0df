/*
Copyright 2026 The Strand Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package charset

import (
	"sort"
	"strings"

	"github.com/strandio/strand/go/strerrors"
)

// The registry is populated by init functions and frozen before any
// concurrent use; lookups after that point need no synchronization.
// This initialize-then-freeze discipline is a caller obligation, not
// something the registry enforces with locks.
var (
	charsetsByName = make(map[string]Charset)
	frozen         bool
)

// normalizeName maps the many spellings of a charset name to one
// registry key: lookup is case-insensitive and ignores '-' and '_', so
// "UTF-8", "utf8" and "utf_8" all resolve to the same entry.
func normalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '-' || c == '_' || c == ' ':
			continue
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Register adds cs to the registry under its canonical name and any
// aliases. Re-registering a name replaces the previous entry (last
// writer wins). Register panics if the registry has been frozen.
func Register(cs Charset, aliases ...string) {
	if frozen {
		panic("charset: Register called after Freeze")
	}
	charsetsByName[normalizeName(cs.Name())] = cs
	for _, alias := range aliases {
		charsetsByName[normalizeName(alias)] = cs
	}
}

// Freeze marks the registry read-only. Subsequent Register calls panic.
func Freeze() {
	frozen = true
}

// Lookup resolves a charset name, after alias normalization, to its
// registered Charset.
func Lookup(name string) (Charset, error) {
	cs, ok := charsetsByName[normalizeName(name)]
	if !ok {
		return nil, strerrors.Errorf(strerrors.UnknownCodec, "unknown charset: %q", name)
	}
	return cs, nil
}

// Names returns the sorted canonical names of all registered charsets,
// without aliases.
func Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cs := range charsetsByName {
		if !seen[cs.Name()] {
			seen[cs.Name()] = true
			names = append(names, cs.Name())
		}
	}
	sort.Strings(names)
	return names
}

// AliasesOf returns the sorted registry keys that resolve to cs,
// excluding its canonical name.
func AliasesOf(cs Charset) []string {
	canonical := normalizeName(cs.Name())
	var aliases []string
	for key, entry := range charsetsByName {
		if entry == cs && key != canonical {
			aliases = append(aliases, key)
		}
	}
	sort.Strings(aliases)
	return aliases
}
