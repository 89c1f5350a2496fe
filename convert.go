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

/*
Package bbhtml converts bbcode markup into HTML.

The converter repeatedly finds the leftmost recognised tag occurrence, renders
its HTML replacement and splices it into the document, until no complete
occurrence remains. Tags without a matching closing tag, and tags whose
attributes do not fit their syntax, are left in the output as literal text.
Captured text is never HTML-escaped, so the output must not be trusted more
than the input is.

By default a tag body ends at the first line break, so a tag spanning several
lines stays literal; WithSpanLines(true) lets bodies cross lines. Bodies are
always the shortest possible text up to the closing tag. [quote] renders as
<blockquote>, where older converters emitted the non-standard <quoteblock>.
*/
package bbhtml

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/maxim2266/bbhtml/internal/logfields"
)

// Default budgets of a Converter.
const (
	DefaultMaxIterations   = 100000
	DefaultMaxDocumentSize = 64 << 20
)

// Option configures a Converter.
type Option func(*settings)

type settings struct {
	grammar    GrammarOptions
	maxIter    int
	maxSize    int
	normalize  bool
	lineBreaks bool
	log        *slog.Logger
	rec        Recorder
}

// WithSpanLines allows or forbids (the default) line breaks inside tag bodies.
func WithSpanLines(on bool) Option {
	return func(s *settings) { s.grammar.SpanLines = on }
}

// WithEmptySize sets the handling of [size=] without digits.
func WithEmptySize(p EmptySizePolicy) Option {
	return func(s *settings) { s.grammar.EmptySize = p }
}

// WithMaxIterations limits the number of substitutions per conversion; 0 means no limit.
func WithMaxIterations(n int) Option {
	return func(s *settings) { s.maxIter = n }
}

// WithMaxDocumentSize limits the size of the document in bytes at every stage of
// a conversion; 0 means no limit.
func WithMaxDocumentSize(n int) Option {
	return func(s *settings) { s.maxSize = n }
}

// WithNormalizeNewlines turns "\r\n" and "\r" into "\n" before matching.
func WithNormalizeNewlines(on bool) Option {
	return func(s *settings) { s.normalize = on }
}

// WithLineBreaks appends "<br>" to every line of the converted document except the last.
func WithLineBreaks(on bool) Option {
	return func(s *settings) { s.lineBreaks = on }
}

// WithLogger sets the logger; slog.Default() when not given.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithRecorder sets the metrics recorder; NoopRecorder when not given.
func WithRecorder(r Recorder) Option {
	return func(s *settings) { s.rec = r }
}

// Converter turns bbcode into HTML. It is safe for concurrent use.
type Converter struct {
	grammar   *Grammar
	pre, post Rewriter
	maxIter   int
	maxSize   int
	log       *slog.Logger
	rec       Recorder
}

// New compiles the tag grammar and returns a Converter. The only possible
// error is a grammar compilation failure.
func New(opts ...Option) (*Converter, error) {
	s := settings{
		grammar: GrammarOptions{},
		maxIter: DefaultMaxIterations,
		maxSize: DefaultMaxDocumentSize,
	}

	for _, opt := range opts {
		opt(&s)
	}

	g, err := CompileGrammar(s.grammar)

	if err != nil {
		return nil, err
	}

	c := &Converter{
		grammar: g,
		maxIter: s.maxIter,
		maxSize: s.maxSize,
		log:     s.log,
		rec:     s.rec,
	}

	if s.normalize {
		c.pre = normalizeNewlines
	}

	if s.lineBreaks {
		c.post = lineBreaks
	}

	if c.log == nil {
		c.log = slog.Default()
	}

	if c.rec == nil {
		c.rec = NoopRecorder{}
	}

	return c, nil
}

// Grammar returns the compiled grammar of the converter.
func (c *Converter) Grammar() *Grammar {
	return c.grammar
}

// Convert returns the HTML rendering of src. The input slice is never modified.
// On error no output is returned.
func (c *Converter) Convert(ctx context.Context, src []byte) ([]byte, error) {
	start := time.Now()
	doc, owned := src, false

	if err := c.checkSize(len(doc), 0); err != nil {
		return nil, c.fail(err, len(src))
	}

	if c.pre != nil {
		doc, owned = c.pre.Do(append([]byte(nil), src...)), true
	}

	var counts [len(tags)]int

	doc, n, err := c.substitute(ctx, doc, owned, &counts)

	if err != nil {
		return nil, c.fail(err, len(src))
	}

	if c.post != nil {
		doc = c.post.Do(doc)

		if err = c.checkSize(len(doc), n); err != nil {
			return nil, c.fail(err, len(src))
		}
	}

	d := time.Since(start)

	c.rec.ObserveConversion(d, n)
	c.rec.IncOutcome(OutcomeSuccess)

	for i, k := range counts {
		if k > 0 {
			c.rec.AddTags(tags[i].Name, k)
		}
	}

	c.log.Debug("bbcode converted",
		logfields.Iterations(n),
		logfields.InputBytes(len(src)),
		logfields.OutputBytes(len(doc)),
		logfields.Duration(d))

	return doc, nil
}

// ConvertString is Convert for strings.
func (c *Converter) ConvertString(ctx context.Context, s string) (string, error) {
	res, err := c.Convert(ctx, []byte(s))

	if err != nil {
		return "", err
	}

	return string(res), nil
}

// Rewriter wraps the converter as a Rewriter. A failed conversion leaves
// the text unchanged; the failure is only visible as a warning in the
// converter's log and as an outcome reported to its Recorder. Use Convert
// where the error must reach the caller.
func (c *Converter) Rewriter() Rewriter {
	return func(dest, src []byte) ([]byte, []byte) {
		res, err := c.Convert(context.Background(), src)

		if err != nil {
			return src, dest
		}

		return res, dest
	}
}

// substitute runs the find-render-splice loop until no match is left. Fragments
// never contain '[', so every iteration removes at least two of them and the
// loop always converges. When owned is false doc belongs to the caller and is
// never written to.
func (c *Converter) substitute(ctx context.Context, doc []byte, owned bool, counts *[len(tags)]int) ([]byte, int, error) {
	var frag, spare []byte

	for n := 0; ; n++ {
		m, ok := c.grammar.FindNext(doc)

		if !ok {
			return doc, n, nil
		}

		if c.maxIter > 0 && n >= c.maxIter {
			return nil, n, &Error{Kind: KindBudget, Op: "convert", Iterations: n, Err: ErrIterationLimit}
		}

		if err := ctx.Err(); err != nil {
			return nil, n, &Error{Kind: KindCanceled, Op: "convert", Iterations: n, Err: err}
		}

		frag = Render(frag[:0], doc, m)
		size := len(doc) - m.Len() + len(frag)

		if err := c.checkSize(size, n); err != nil {
			return nil, n, err
		}

		if cap(spare) < size {
			spare = make([]byte, 0, size+size/4)
		}

		next := append(append(append(spare[:0], doc[:m.Start]...), frag...), doc[m.End:]...)

		if owned {
			spare = doc
		} else {
			spare, owned = nil, true
		}

		doc = next
		counts[m.tag]++
	}
}

func (c *Converter) checkSize(size, iterations int) error {
	if c.maxSize > 0 && size > c.maxSize {
		return &Error{
			Kind:       KindAllocation,
			Op:         "convert",
			Iterations: iterations,
			Err:        fmt.Errorf("%w: %d bytes, limit %d", ErrDocumentTooLarge, size, c.maxSize),
		}
	}

	return nil
}

func (c *Converter) fail(err error, inputBytes int) error {
	kind := KindOf(err)

	switch kind {
	case KindAllocation:
		c.rec.IncOutcome(OutcomeTooLarge)
	case KindBudget:
		c.rec.IncOutcome(OutcomeIterationLimit)
	case KindCanceled:
		c.rec.IncOutcome(OutcomeCanceled)
	}

	c.log.Warn("bbcode conversion aborted",
		logfields.Kind(kind.String()),
		logfields.InputBytes(inputBytes),
		logfields.Error(err))

	return err
}

var defaultConverter = sync.OnceValues(func() (*Converter, error) { return New() })

// Convert converts s with a Converter built from the default options.
func Convert(s string) (string, error) {
	c, err := defaultConverter()

	if err != nil {
		return "", err
	}

	return c.ConvertString(context.Background(), s)
}
