/*
Copyright (c) 2019 Maxim Konakov
All rights reserved.

Redistribution and use in source and binary forms, with or without modification,
are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
   this list of conditions and the following disclaimer.
2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.
3. Neither the name of the copyright holder nor the names of its contributors
   may be used to endorse or promote products derived from this software without
   specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND
ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED.
IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT,
INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY
OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE,
EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

package bbhtml

// Span is a half-open byte range [Start, End) within a document.
// A negative Start means the slot did not participate in the match.
type Span struct {
	Start, End int
}

// NoSpan is the value of an absent capture slot.
var NoSpan = Span{-1, -1}

// Ok reports whether the span is present.
func (s Span) Ok() bool {
	return s.Start >= 0
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	if !s.Ok() {
		return 0
	}

	return s.End - s.Start
}

// In returns the bytes of doc covered by the span, or nil when the span is absent.
func (s Span) In(doc []byte) []byte {
	if !s.Ok() {
		return nil
	}

	return doc[s.Start:s.End]
}

// Match is one tag occurrence located in a document. Only the slots of the
// tag's family are ever present:
//
//	url    Target (without the leading '='), Body
//	img    Width, Height (from either "WxH" or "width=W height=H"), Body
//	color  Value, Body
//	size   Value, Body
//	simple Body
type Match struct {
	Span

	Target Span
	Width  Span
	Height Span
	Value  Span
	Body   Span

	tag int // index into the tag table
}

// Tag returns a copy of the matched tag's table entry.
func (m Match) Tag() Tag {
	return tags[m.tag]
}

// FindNext returns the leftmost tag occurrence in doc. When several tags
// could start at the same offset the one declared first wins.
func (g *Grammar) FindNext(doc []byte) (m Match, ok bool) {
	loc := g.re.FindSubmatchIndex(doc)

	if loc == nil {
		return
	}

	for i := range tags {
		s := &g.slots[i]

		if loc[2*s.body] < 0 {
			continue
		}

		m = Match{
			Span:   Span{loc[0], loc[1]},
			tag:    i,
			Target: slot(loc, s.target),
			Value:  slot(loc, s.value),
			Body:   slot(loc, s.body),
			Width:  slot(loc, s.w),
			Height: slot(loc, s.h),
		}

		if !m.Width.Ok() {
			m.Width, m.Height = slot(loc, s.width), slot(loc, s.height)
		}

		return m, true
	}

	// unreachable with a grammar built by CompileGrammar
	return Match{}, false
}

// Matcher returns a Matcher locating whole tag occurrences, for use with Delete or Replace.
func (g *Grammar) Matcher() Matcher {
	return g.re.FindIndex
}

func slot(loc []int, i int) Span {
	if i <= 0 || loc[2*i] < 0 {
		return NoSpan
	}

	return Span{loc[2*i], loc[2*i+1]}
}
