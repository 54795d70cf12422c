/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qfilter

import (
	"strings"
	"unicode"

	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qerrors"
	"github.com/haraldrudell/gridquery/qindex"
	"github.com/haraldrudell/gridquery/qset"
)

// likeSegment is one compiled piece of a Like pattern: a run of
// literal and/or '_' wildcard characters between '%' boundaries.
type likeSegment struct {
	chars []rune
	wild  []bool
}

func (s likeSegment) len() int { return len(s.chars) }

// matchAt reports whether s matches text starting at pos.
func (s likeSegment) matchAt(text []rune, pos int) bool {
	if pos < 0 || pos+len(s.chars) > len(text) {
		return false
	}
	for i, ch := range s.chars {
		if !s.wild[i] && text[pos+i] != ch {
			return false
		}
	}
	return true
}

// find returns the first position >= from at which s matches, or -1.
func (s likeSegment) find(text []rune, from int) int {
	if len(s.chars) == 0 {
		return from
	}
	for pos := from; pos+len(s.chars) <= len(text); pos++ {
		if s.matchAt(text, pos) {
			return pos
		}
	}
	return -1
}

// likePlan is the compiled execution plan for one Like pattern: a
// front step, zero or more floating middle steps, and a back step,
// with leading/trailing anchors suppressed by a pattern starting or
// ending with '%'.
type likePlan struct {
	segments       []likeSegment
	leadingAnchor  bool
	trailingAnchor bool
	ignoreCase     bool
	isLiteral      bool // pattern has no '%' and no '_': degrade to Equals
	literal        string
}

func foldRune(r rune) rune { return unicode.ToLower(r) }

// compileLike parses pattern into a likePlan. escape, when hasEscape,
// literalizes the character following it — including '%' and '_'
// themselves. Fails with InvalidArgument on a dangling trailing
// escape.
func compileLike(pattern string, escape rune, hasEscape bool, ignoreCase bool) (plan *likePlan, err error) {
	var runes = []rune(pattern)
	var segments []likeSegment
	var cur likeSegment
	var leadingAnchor = true
	var trailingAnchor = true
	var isLiteral = true
	var literalOnly strings.Builder

	var fold = func(r rune) rune {
		if ignoreCase {
			return foldRune(r)
		}
		return r
	}

	for i := 0; i < len(runes); i++ {
		var r = runes[i]
		switch {
		case hasEscape && r == escape:
			i++
			if i >= len(runes) {
				err = qerrors.InvalidArgument("qfilter: Like pattern %q ends with a dangling escape character", pattern)
				return
			}
			var lit = runes[i]
			cur.chars = append(cur.chars, fold(lit))
			cur.wild = append(cur.wild, false)
			literalOnly.WriteRune(lit)
		case r == '%':
			segments = append(segments, cur)
			cur = likeSegment{}
			if i == 0 {
				leadingAnchor = false
			}
			if i == len(runes)-1 {
				trailingAnchor = false
			}
			isLiteral = false
		case r == '_':
			cur.chars = append(cur.chars, 0)
			cur.wild = append(cur.wild, true)
			isLiteral = false
		default:
			cur.chars = append(cur.chars, fold(r))
			cur.wild = append(cur.wild, false)
			literalOnly.WriteRune(r)
		}
	}
	segments = append(segments, cur)

	plan = &likePlan{
		segments:       segments,
		leadingAnchor:  leadingAnchor,
		trailingAnchor: trailingAnchor,
		ignoreCase:     ignoreCase,
		isLiteral:      isLiteral,
	}
	if isLiteral {
		plan.literal = literalOnly.String()
	}
	return
}

// match reports whether s satisfies the compiled pattern.
func (p *likePlan) match(s string) bool {
	var text = []rune(s)
	if p.ignoreCase {
		for i, r := range text {
			text[i] = foldRune(r)
		}
	}

	var n = len(p.segments)
	var first = p.segments[0]
	if n == 1 {
		// no '%' anywhere: the whole string must match exactly
		return len(text) == first.len() && first.matchAt(text, 0)
	}

	var pos int
	if p.leadingAnchor {
		if !first.matchAt(text, 0) {
			return false
		}
		pos = first.len()
	}

	for i := 1; i < n-1; i++ {
		var seg = p.segments[i]
		if seg.len() == 0 {
			continue // consecutive '%': no-op boundary
		}
		var found = seg.find(text, pos)
		if found < 0 {
			return false
		}
		pos = found + seg.len()
	}

	var last = p.segments[n-1]
	if p.trailingAnchor {
		var want = len(text) - last.len()
		return want >= pos && last.matchAt(text, want)
	}
	if last.len() == 0 {
		return true // pattern ends with '%': anything from pos onward qualifies
	}
	return last.find(text, pos) >= 0
}

// Like is a wildcard pattern match over a string-valued attribute:
// '%' matches any substring (including empty), '_' matches exactly one
// character, and an optional escape character literalizes the
// character that follows it.
type Like[K comparable, V any] struct {
	Extractor  TaggedExtractor[K, V, string]
	Pattern    string
	Escape     rune
	HasEscape  bool
	IgnoreCase bool
	plan       *likePlan
}

// NewLike compiles pattern and returns a Like filter, failing with
// InvalidArgument on a malformed pattern — validation happens at
// construction, not first evaluation.
func NewLike[K comparable, V any](extractor TaggedExtractor[K, V, string], pattern string, escape rune, hasEscape bool, ignoreCase bool) (f *Like[K, V], err error) {
	var plan, compileErr = compileLike(pattern, escape, hasEscape, ignoreCase)
	if compileErr != nil {
		return nil, compileErr
	}
	return &Like[K, V]{
		Extractor: extractor, Pattern: pattern, Escape: escape,
		HasEscape: hasEscape, IgnoreCase: ignoreCase, plan: plan,
	}, nil
}

func (f *Like[K, V]) Evaluate(value V) bool {
	var extracted, err = evalValue[K](f.Extractor, value)
	return err == nil && f.plan.match(extracted)
}

func (f *Like[K, V]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	var extracted, err = f.Extractor.ExtractFromEntry(entry)
	return err == nil && f.plan.match(extracted)
}

// Effectiveness is 1 when the pattern is wholly literal (degrades to
// Equals); otherwise the full eval cost of scanning the inverse index.
func (f *Like[K, V]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	var _, ok = indexFor[K, V, string](indexMap, f.Extractor.Tag())
	if !ok {
		return evalCost * keys.Len()
	}
	if f.plan.isLiteral && !f.IgnoreCase {
		return 1
	}
	return keys.Len()
}

// ApplyIndex degrades to an exact Equals lookup when the pattern is
// wholly literal; otherwise it scans every posting testing the
// pattern directly. A partial index cannot be used to remove keys
// this way, since an absent posting says nothing about whether its
// key would have matched.
func (f *Like[K, V]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var idx, ok = indexFor[K, V, string](indexMap, f.Extractor.Tag())
	if !ok {
		return f, false
	}
	// a case-insensitive literal cannot degrade to an exact posting
	// lookup: the postings store unfolded values
	if f.plan.isLiteral && !f.IgnoreCase {
		var posting, found = idx.Inverse().Get(f.plan.literal)
		if !found {
			posting = qset.New[K]()
		}
		if narrowConservatively(keys, posting, idx).Len() == 0 {
			return nil, true
		}
		return f, false
	}
	var matching = keys.Clone()
	idx.Inverse().Range(func(value string, posting *qset.Set[K]) bool {
		if !f.plan.match(value) {
			matching.RemoveAll(posting)
		}
		return true
	})
	if narrowConservatively(keys, matching, idx).Len() == 0 {
		return nil, true
	}
	return f, false
}

var _ IndexAwareFilter[int, int] = (*Like[int, int])(nil)
