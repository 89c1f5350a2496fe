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
	"bytes"
	"testing"
)

func TestDeleteLit(t *testing.T) {
	cases := []struct {
		src, patt, exp string
	}{
		{"abc", "a", "bc"},
		{"abc", "b", "ac"},
		{"abc", "c", "ab"},
		{"abc", "z", "abc"},
		{"aa bb cc aa bb cc", "aa ", "bb cc bb cc"},
		{"aa bb cc aa bb cc", " cc", "aa bb aa bb"},
		{"abcabc", "abc", ""},
	}

	for i, c := range cases {
		if res := Delete(Lit(c.patt)).Do([]byte(c.src)); !bytes.Equal(res, []byte(c.exp)) {
			t.Errorf("[%d] Unexpected result: %q instead of %q", i, string(res), c.exp)
			return
		}
	}
}

func TestReplaceLit(t *testing.T) {
	cases := []struct {
		src, patt, repl, exp string
	}{
		{"abc", "a", "Z", "Zbc"},
		{"abc", "c", "Z", "abZ"},
		{"abc", "z", "Z", "abc"},
		{"aa", "aa", "ZZZ", "ZZZ"},
		{"aa bb cc aa bb cc", "bb", "ZZZ", "aa ZZZ cc aa ZZZ cc"},
		{"aa bb cc", "bb", "", "aa  cc"},
	}

	for i, c := range cases {
		if res := Replace(Lit(c.patt), c.repl).Do([]byte(c.src)); !bytes.Equal(res, []byte(c.exp)) {
			t.Errorf("[%d] Unexpected result: %q instead of %q", i, string(res), c.exp)
			return
		}
	}
}

func TestReplaceMulti(t *testing.T) {
	type Subst struct {
		patt, repl string
	}

	cases := []struct {
		src   string
		subst []Subst
		exp   string
	}{
		{"abc", []Subst{{"a", "X"}, {"b", "Y"}, {"c", "Z"}}, "XYZ"},
		{"abc", []Subst{{"a", ""}, {"b", "Y"}, {"c", "Z"}}, "YZ"},
		{"aa bb cc aa bb cc", []Subst{{"bb", "XXX"}, {"XXX", "Y"}, {"Y", "ZZZ"}}, "aa ZZZ cc aa ZZZ cc"},
	}

	for i, c := range cases {
		rw := make([]Rewriter, 0, len(c.subst))

		for _, s := range c.subst {
			rw = append(rw, Replace(Lit(s.patt), s.repl))
		}

		if res := Seq(rw...).Do([]byte(c.src)); !bytes.Equal(res, []byte(c.exp)) {
			t.Errorf("[%d] Unexpected result: %q instead of %q", i, string(res), c.exp)
			return
		}
	}
}

func TestLineEndingPasses(t *testing.T) {
	cases := []struct {
		src, norm, br string
	}{
		{"", "", ""},
		{"abc", "abc", "abc"},
		{"a\r\nb", "a\nb", "a\r<br>\nb"},
		{"a\rb\r\n", "a\nb\n", "a\rb\r<br>\n"},
		{"a\n\nb", "a\n\nb", "a<br>\n<br>\nb"},
	}

	for i, c := range cases {
		if res := normalizeNewlines.Do([]byte(c.src)); !bytes.Equal(res, []byte(c.norm)) {
			t.Errorf("[%d] Unexpected normalised result: %q instead of %q", i, string(res), c.norm)
			return
		}

		if res := lineBreaks.Do([]byte(c.src)); !bytes.Equal(res, []byte(c.br)) {
			t.Errorf("[%d] Unexpected line break result: %q instead of %q", i, string(res), c.br)
			return
		}
	}
}

func TestGrammarMatcher(t *testing.T) {
	g, err := CompileGrammar(GrammarOptions{})

	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		src, exp string
	}{
		{"a [b]x[/b] b [i]y[/i] c", "a  b  c"},
		{"[b]x", "[b]x"},
		{"[color=purple]x[/color]", "[color=purple]x[/color]"},
	}

	for i, c := range cases {
		if res := Delete(g.Matcher()).Do([]byte(c.src)); !bytes.Equal(res, []byte(c.exp)) {
			t.Errorf("[%d] Unexpected result: %q instead of %q", i, string(res), c.exp)
			return
		}
	}
}

func BenchmarkReplace(b *testing.B) {
	src := []byte("aa\r\nbb\r\ncc")
	exp := []byte("aa\nbb\ncc")
	s := make([]byte, len(src))
	fn := Replace(Lit("\r\n"), "\n").Do
	ok := true

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N && ok; n++ {
		copy(s, src)
		ok = bytes.Equal(fn(s), exp)
	}

	b.StopTimer()

	if !ok {
		b.Error("Benchmark failed!")
		return
	}
}
