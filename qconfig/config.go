/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package qconfig is declarative, YAML-driven cache-scheme resolution:
// match a cache name against a list of mappings (exact name, then
// longest wildcard prefix, then a default), and apply the matched
// mapping's index declarations.
//
// Go generics can't describe "the extractor named by this YAML tag" at
// decode time — the extracted type X is erased from the document. This
// package therefore only resolves which indexes a cache name should
// carry; binding a resolved IndexSpec to a live, typed index is left to
// a caller-supplied factory registry (see bind.go).
package qconfig

import (
	"strings"

	"github.com/haraldrudell/gridquery/qerrors"
	"gopkg.in/yaml.v2"
)

// IndexSpec names one index a CacheMapping wants installed.
type IndexSpec struct {
	// Tag identifies the extractor, looked up in a Registry at
	// apply time (qextract.Func.Tag / qfilter.TaggedExtractor.Tag).
	Tag string `yaml:"extractor"`
	// Ordered selects a btree-backed inverse index over a hash-map one.
	Ordered bool `yaml:"ordered"`
}

// CacheMapping pairs a cache-name pattern with the indexes caches
// matching it should carry.
type CacheMapping struct {
	// Name is matched against a cache name exactly, or, if it ends in
	// "*", as a prefix; the empty name or a bare "*" is the fallback
	// mapping used when nothing else matches.
	Name    string      `yaml:"cache-name"`
	Indexes []IndexSpec `yaml:"indexes"`
}

// Document is the top-level YAML document: an ordered list of
// mappings, tried exact-match first, then longest wildcard prefix,
// then default.
type Document struct {
	Mappings []CacheMapping `yaml:"mappings"`
}

// Parse decodes a YAML document into a Document.
func Parse(data []byte) (doc Document, err error) {
	if err = yaml.Unmarshal(data, &doc); err != nil {
		err = qerrors.InvalidArgument("qconfig: invalid document: %v", err)
		return
	}
	return
}

// Resolve finds the mapping that applies to cacheName: an exact-name
// match wins outright; otherwise the longest "*"-suffixed prefix match
// wins; otherwise the default mapping (name "" or "*") applies if
// present.
func (doc Document) Resolve(cacheName string) (mapping CacheMapping, ok bool) {
	var bestPrefixLen = -1
	var haveDefault bool
	var defaultMapping CacheMapping

	for _, m := range doc.Mappings {
		switch {
		case m.Name == cacheName:
			return m, true
		case m.Name == "" || m.Name == "*":
			defaultMapping, haveDefault = m, true
		case strings.HasSuffix(m.Name, "*"):
			var prefix = strings.TrimSuffix(m.Name, "*")
			if strings.HasPrefix(cacheName, prefix) && len(prefix) > bestPrefixLen {
				bestPrefixLen = len(prefix)
				mapping, ok = m, true
			}
		}
	}
	if ok {
		return
	}
	if haveDefault {
		return defaultMapping, true
	}
	return CacheMapping{}, false
}
