package lazy

import "github.com/dlclark/regexp2"

// StringSeq is the string specialization (§4.D): a string sequence
// whose elements are its characters (runes), extended with match and
// split. get(i) is charAt(i); the underlying engine behind match and
// split is regexp2.Regexp, the one regex package in this module's
// dependency pack that exposes a resumable, stateful scanner over a
// single compiled pattern (FindNextMatch) rather than a one-shot
// FindAll.
type StringSeq struct {
	source string
	runes  []rune
}

// NewStringSeq wraps s as a character sequence.
func NewStringSeq(s string) StringSeq { return StringSeq{source: s, runes: []rune(s)} }

// Each visits each rune of the string, in order.
func (s StringSeq) Each(v Visitor[rune]) {
	for i, r := range s.runes {
		if !v(r, i) {
			return
		}
	}
}

// Get implements Indexable; it is charAt(i) from §4.D.
func (s StringSeq) Get(i int) rune { return s.runes[i] }

// Length implements Indexable.
func (s StringSeq) Length() int { return len(s.runes) }

// CharAt is the named alias for Get, matching §4.D's charAt ≡ get(i).
func (s StringSeq) CharAt(i int) rune { return s.Get(i) }

// String returns the original string this sequence was built from.
func (s StringSeq) String() string { return s.source }

// GetIterator implements IteratorSource with the "character iterator"
// of §4.G.
func (s StringSeq) GetIterator() Iterator[rune] { return newSliceIterator[rune](s) }

// globalPattern coerces pattern into a private clone, satisfying
// §4.D's "clone or coerce a non-global pattern into a global form
// without mutating the caller's pattern": a *regexp2.Regexp's match
// chain (FindMatch/FindNextMatch) carries per-call state, so two
// callers walking the same *Regexp concurrently would corrupt each
// other's cursor. Recompiling from the pattern's source text gives
// Match/Split their own instance to walk; non-default options set on
// the caller's Regexp are not round-tripped through this clone, a
// known limitation of cloning from text rather than from the
// compiled options.
func globalPattern(pattern *regexp2.Regexp) *regexp2.Regexp {
	clone, err := regexp2.Compile(pattern.String(), regexp2.None)
	if err != nil {
		panic(err)
	}
	return clone
}

// Match returns the sequence of successive global matches of pattern
// against s (§4.D): each element is the matched substring.
func (s StringSeq) Match(pattern *regexp2.Regexp) Seq[string] {
	return Of[string](matchSource{source: s.source, pattern: globalPattern(pattern)})
}

type matchSource struct {
	source  string
	pattern *regexp2.Regexp
}

func (m matchSource) Each(v Visitor[string]) {
	iter := newRegexMatchIterator(m.source, m.pattern)
	ctx := backgroundCtx()
	i := 0
	for iter.Next(ctx) {
		if !v(iter.Value(), i) {
			return
		}
		i++
	}
}

// Split partitions s on delimiter, covering the two string cases of
// §4.D: a non-empty string delimiter, or the empty string (character
// split). The regex-driven case is SplitRegex.
func (s StringSeq) Split(delimiter string) Seq[string] {
	if delimiter == "" {
		out := make([]string, len(s.runes))
		for i, r := range s.runes {
			out[i] = string(r)
		}
		return FromSlice(out)
	}
	return Of[string](stringSplitSource{source: s.source, delim: delimiter})
}

// SplitRegex partitions s on matches of pattern, emitting the segments
// between matches and the final trailing segment.
func (s StringSeq) SplitRegex(pattern *regexp2.Regexp) Seq[string] {
	return Of[string](regexSplitSource{source: s.source, pattern: globalPattern(pattern)})
}

type stringSplitSource struct {
	source string
	delim  string
}

func (ss stringSplitSource) Each(v Visitor[string]) {
	iter := newStringSplitIterator(ss.source, ss.delim)
	ctx := backgroundCtx()
	i := 0
	for iter.Next(ctx) {
		if !v(iter.Value(), i) {
			return
		}
		i++
	}
}

type regexSplitSource struct {
	source  string
	pattern *regexp2.Regexp
}

func (rs regexSplitSource) Each(v Visitor[string]) {
	iter := newRegexSplitIterator(rs.source, rs.pattern)
	ctx := backgroundCtx()
	i := 0
	for iter.Next(ctx) {
		if !v(iter.Value(), i) {
			return
		}
		i++
	}
}
