/*
Copyright (c) 2019,2020 Maxim Konakov
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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// capture is a printable view of a Match; absent slots are "-"
type capture struct {
	Tag, Whole, Target, Width, Height, Value, Body string
}

func view(doc string, m Match) capture {
	text := func(s Span) string {
		if !s.Ok() {
			return "-"
		}

		return doc[s.Start:s.End]
	}

	return capture{
		Tag:    m.Tag().Name,
		Whole:  text(m.Span),
		Target: text(m.Target),
		Width:  text(m.Width),
		Height: text(m.Height),
		Value:  text(m.Value),
		Body:   text(m.Body),
	}
}

func mustGrammar(t testing.TB, opts GrammarOptions) *Grammar {
	t.Helper()

	g, err := CompileGrammar(opts)

	if err != nil {
		t.Fatal(err)
	}

	return g
}

func TestFindNext(t *testing.T) {
	g := mustGrammar(t, GrammarOptions{SpanLines: true})

	cases := []struct {
		src string
		exp capture
	}{
		{"x [b]hello[/b] y", capture{"b", "[b]hello[/b]", "-", "-", "-", "-", "hello"}},
		{"[b][/b]", capture{"b", "[b][/b]", "-", "-", "-", "-", ""}},
		{"[url]site[/url]", capture{"url", "[url]site[/url]", "-", "-", "-", "-", "site"}},
		{"[url=https://example.com]click[/url]", capture{"url", "[url=https://example.com]click[/url]", "https://example.com", "-", "-", "-", "click"}},
		{"[url=http://a.b/c?d=e]x[/url]", capture{"url", "[url=http://a.b/c?d=e]x[/url]", "http://a.b/c?d=e", "-", "-", "-", "x"}},
		{"[img]a.gif[/img]", capture{"img", "[img]a.gif[/img]", "-", "-", "-", "-", "a.gif"}},
		{"[img 120x320]pic.png[/img]", capture{"img", "[img 120x320]pic.png[/img]", "-", "120", "320", "-", "pic.png"}},
		{"[img width=5 height=7]a.gif[/img]", capture{"img", "[img width=5 height=7]a.gif[/img]", "-", "5", "7", "-", "a.gif"}},
		{"[color=red]r[/color]", capture{"color", "[color=red]r[/color]", "-", "-", "-", "red", "r"}},
		{"[color=#ff00AA]w[/color]", capture{"color", "[color=#ff00AA]w[/color]", "-", "-", "-", "#ff00AA", "w"}},
		{"[size=12]big[/size]", capture{"size", "[size=12]big[/size]", "-", "-", "-", "12", "big"}},

		// leftmost occurrence wins, whatever its family
		{"[i]a[/i][b]b[/b]", capture{"i", "[i]a[/i]", "-", "-", "-", "-", "a"}},
		{"[size=1]a[/size][b]b[/b]", capture{"size", "[size=1]a[/size]", "-", "-", "-", "1", "a"}},
		{"[b]x [size=1]a[/size][/b]", capture{"b", "[b]x [size=1]a[/size][/b]", "-", "-", "-", "-", "x [size=1]a[/size]"}},

		// shortest body
		{"[b]x[b]y[/b]z[/b]", capture{"b", "[b]x[b]y[/b]", "-", "-", "-", "-", "x[b]y"}},
		{"[b]x[/b][/b]", capture{"b", "[b]x[/b]", "-", "-", "-", "-", "x"}},

		// an unclosed opener is skipped
		{"[b]x [i]y[/i]", capture{"i", "[i]y[/i]", "-", "-", "-", "-", "y"}},
		{"[color=purple]x[/color] [u]y[/u]", capture{"u", "[u]y[/u]", "-", "-", "-", "-", "y"}},

		{"[quote]a\nb[/quote]", capture{"quote", "[quote]a\nb[/quote]", "-", "-", "-", "-", "a\nb"}},
		{"[s]z[/s]", capture{"s", "[s]z[/s]", "-", "-", "-", "-", "z"}},
	}

	for i, c := range cases {
		m, ok := g.FindNext([]byte(c.src))

		if !ok {
			t.Errorf("[%d] no match in %q", i, c.src)
			continue
		}

		if diff := cmp.Diff(c.exp, view(c.src, m)); diff != "" {
			t.Errorf("[%d] %q: capture mismatch (-want +got):\n%s", i, c.src, diff)
		}
	}
}

func TestFindNextNoMatch(t *testing.T) {
	g := mustGrammar(t, GrammarOptions{})

	cases := []string{
		"",
		"plain text",
		"[b]x",
		"x[/b]",
		"[b]x[/i]",
		"[B]x[/B]",
		"[color=purple]x[/color]",
		"[color=#12345]x[/color]",
		"[color=#GG0000]x[/color]",
		"[size=]x[/size]",
		"[size=1a]x[/size]",
		"[img 12x]a[/img]",
		"[img width=1]a[/img]",
		"[url=ftp://host]a[/url]",
		"[url=]a[/url]",
		"[b]a\nb[/b]",
		"[unknown]a[/unknown]",
	}

	for i, src := range cases {
		if m, ok := g.FindNext([]byte(src)); ok {
			t.Errorf("[%d] unexpected match in %q: %+v", i, src, view(src, m))
		}
	}
}

func TestFindNextEmptySize(t *testing.T) {
	g := mustGrammar(t, GrammarOptions{EmptySize: EmptySizeInherit})

	m, ok := g.FindNext([]byte("[size=]x[/size]"))

	if !ok {
		t.Fatal("no match")
	}

	exp := capture{"size", "[size=]x[/size]", "-", "-", "-", "", "x"}

	if diff := cmp.Diff(exp, view("[size=]x[/size]", m)); diff != "" {
		t.Errorf("capture mismatch (-want +got):\n%s", diff)
	}
}

func TestSpan(t *testing.T) {
	doc := []byte("abcdef")

	if s := (Span{1, 4}); !s.Ok() || s.Len() != 3 || string(s.In(doc)) != "bcd" {
		t.Errorf("unexpected span behaviour: %+v", s)
	}

	if NoSpan.Ok() || NoSpan.Len() != 0 || NoSpan.In(doc) != nil {
		t.Error("NoSpan must be empty")
	}
}

func TestTagTable(t *testing.T) {
	exp := []string{"b", "i", "u", "s", "center", "left", "right", "quote", "spoiler", "code", "url", "img", "color", "size"}
	list := Tags()

	if len(list) != len(exp) {
		t.Fatalf("unexpected number of tags: %d", len(list))
	}

	for i, name := range exp {
		if list[i].Name != name {
			t.Errorf("[%d] unexpected tag %q instead of %q", i, list[i].Name, name)
		}

		if tag, ok := Lookup(name); !ok || tag.Name != name {
			t.Errorf("[%d] lookup of %q failed", i, name)
		}
	}

	// families never go backwards in declaration order
	for i := 1; i < len(list); i++ {
		if list[i].Family < list[i-1].Family {
			t.Errorf("tag %q declared out of family order", list[i].Name)
		}
	}

	// the copy is detached from the table
	list[0].Open = "<b>"

	if tag, _ := Lookup("b"); tag.Open != "<strong>" {
		t.Error("Tags() must return a copy")
	}

	if _, ok := Lookup("blink"); ok {
		t.Error("unexpected tag found")
	}
}

func TestParseEmptySizePolicy(t *testing.T) {
	cases := []struct {
		src string
		exp EmptySizePolicy
		err bool
	}{
		{"", EmptySizeReject, false},
		{"reject", EmptySizeReject, false},
		{" Inherit ", EmptySizeInherit, false},
		{"zero", EmptySizeReject, true},
	}

	for i, c := range cases {
		p, err := ParseEmptySizePolicy(c.src)

		if (err != nil) != c.err || p != c.exp {
			t.Errorf("[%d] %q: unexpected result %v, %v", i, c.src, p, err)
		}
	}
}
