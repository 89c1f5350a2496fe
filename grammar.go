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

import (
	"fmt"
	"regexp"
	"strings"
)

// Family is a group of tags sharing the same attribute syntax and rendering shape.
// Families are declared in matching priority order.
type Family int

const (
	FamilySimple Family = iota
	FamilyURL
	FamilyImage
	FamilyColor
	FamilySize
)

func (f Family) String() string {
	switch f {
	case FamilySimple:
		return "simple"
	case FamilyURL:
		return "url"
	case FamilyImage:
		return "img"
	case FamilyColor:
		return "color"
	case FamilySize:
		return "size"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Tag is an entry of the tag table. Open, Sep and End are the fixed parts of the
// rendered HTML: Open precedes the first interpolated value, Sep closes the opening
// element, End follows the body.
type Tag struct {
	Name   string
	Family Family
	Open   string
	Sep    string
	End    string
}

var tags = [...]Tag{
	{Name: "b", Family: FamilySimple, Open: "<strong>", End: "</strong>"},
	{Name: "i", Family: FamilySimple, Open: "<em>", End: "</em>"},
	{Name: "u", Family: FamilySimple, Open: "<ins>", End: "</ins>"},
	{Name: "s", Family: FamilySimple, Open: "<del>", End: "</del>"},
	{Name: "center", Family: FamilySimple, Open: `<div style="text-align:center">`, End: "</div>"},
	{Name: "left", Family: FamilySimple, Open: `<div style="text-align:left">`, End: "</div>"},
	{Name: "right", Family: FamilySimple, Open: `<div style="text-align:right">`, End: "</div>"},
	{Name: "quote", Family: FamilySimple, Open: "<blockquote>", End: "</blockquote>"},
	{Name: "spoiler", Family: FamilySimple, Open: `<span class="spoiler">`, End: "</span>"},
	{Name: "code", Family: FamilySimple, Open: "<code>", End: "</code>"},
	{Name: "url", Family: FamilyURL, Open: `<a href="`, Sep: `">`, End: "</a>"},
	{Name: "img", Family: FamilyImage, Open: `<img src="`, Sep: ">"},
	{Name: "color", Family: FamilyColor, Open: `<div style="color:`, Sep: `;">`, End: "</div>"},
	{Name: "size", Family: FamilySize, Open: `<div style="font-size:`, Sep: `px;">`, End: "</div>"},
}

// Tags returns a copy of the tag table in declaration order.
func Tags() []Tag {
	res := make([]Tag, len(tags))
	copy(res, tags[:])
	return res
}

// Lookup returns a copy of the tag with the given name.
func Lookup(name string) (Tag, bool) {
	for i := range tags {
		if tags[i].Name == name {
			return tags[i], true
		}
	}

	return Tag{}, false
}

// EmptySizePolicy decides what happens to [size=]text[/size].
type EmptySizePolicy int

const (
	// EmptySizeReject leaves a size tag without digits as literal text.
	EmptySizeReject EmptySizePolicy = iota
	// EmptySizeInherit renders a size tag without digits as "font-size:inherit".
	EmptySizeInherit
)

func (p EmptySizePolicy) String() string {
	if p == EmptySizeInherit {
		return "inherit"
	}

	return "reject"
}

// ParseEmptySizePolicy converts "reject" or "inherit" into a policy value.
func ParseEmptySizePolicy(s string) (EmptySizePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return EmptySizeReject, nil
	case "inherit":
		return EmptySizeInherit, nil
	default:
		return EmptySizeReject, fmt.Errorf("unknown empty size policy %q", s)
	}
}

// GrammarOptions control pattern details that are not fixed by the tag table.
type GrammarOptions struct {
	SpanLines bool // tag bodies may contain line breaks
	EmptySize EmptySizePolicy
}

// Grammar is the compiled alternation of all tag patterns. It is read-only
// after compilation and may be shared between goroutines.
type Grammar struct {
	re    *regexp.Regexp
	slots [len(tags)]slotIndex
	opts  GrammarOptions
}

// subexpression indices of the capture slots of one tag, 0 when the tag has no such slot
type slotIndex struct {
	body, target, w, h, width, height, value int
}

// CompileGrammar builds the Grammar for the given options.
func CompileGrammar(opts GrammarOptions) (*Grammar, error) {
	re, err := regexp.Compile(grammarSource(opts))

	if err != nil {
		return nil, &Error{Kind: KindGrammar, Op: "compile", Err: fmt.Errorf("%w: %v", ErrGrammar, err)}
	}

	g := &Grammar{re: re, opts: opts}

	for i := range tags {
		t := &tags[i]
		s := &g.slots[i]

		s.body = re.SubexpIndex(group(t, "body"))

		switch t.Family {
		case FamilyURL:
			s.target = re.SubexpIndex(group(t, "target"))
		case FamilyImage:
			s.w = re.SubexpIndex(group(t, "w"))
			s.h = re.SubexpIndex(group(t, "h"))
			s.width = re.SubexpIndex(group(t, "width"))
			s.height = re.SubexpIndex(group(t, "height"))
		case FamilyColor, FamilySize:
			s.value = re.SubexpIndex(group(t, "value"))
		}

		if s.body < 0 {
			return nil, &Error{Kind: KindGrammar, Op: "compile", Err: fmt.Errorf("%w: no body slot for tag %q", ErrGrammar, t.Name)}
		}
	}

	return g, nil
}

// Options returns the options the grammar was compiled with.
func (g *Grammar) Options() GrammarOptions {
	return g.opts
}

// String returns the source of the compiled pattern.
func (g *Grammar) String() string {
	return g.re.String()
}

func grammarSource(opts GrammarOptions) string {
	var sb strings.Builder

	if opts.SpanLines {
		sb.WriteString("(?s)")
	}

	for i := range tags {
		if i > 0 {
			sb.WriteByte('|')
		}

		sb.WriteString(tagSource(&tags[i], opts))
	}

	return sb.String()
}

func tagSource(t *Tag, opts GrammarOptions) string {
	name := regexp.QuoteMeta(t.Name)
	body := `(?P<` + group(t, "body") + `>.*?)\[/` + name + `\]`

	switch t.Family {
	case FamilyURL:
		return `\[` + name + `(?:=(?P<` + group(t, "target") + `>https?://[^\]]+))?\]` + body

	case FamilyImage:
		return `\[` + name +
			`(?:\s+(?P<` + group(t, "w") + `>\d+)x(?P<` + group(t, "h") + `>\d+)` +
			`|\s+width=(?P<` + group(t, "width") + `>\d+)\s+height=(?P<` + group(t, "height") + `>\d+))?\]` + body

	case FamilyColor:
		return `\[` + name + `=(?P<` + group(t, "value") + `>red|green|blue|#[0-9A-Fa-f]{6})\]` + body

	case FamilySize:
		digits := `\d+`

		if opts.EmptySize == EmptySizeInherit {
			digits = `\d*`
		}

		return `\[` + name + `=(?P<` + group(t, "value") + `>` + digits + `)\]` + body

	default:
		return `\[` + name + `\]` + body
	}
}

func group(t *Tag, slot string) string {
	return t.Name + "_" + slot
}
