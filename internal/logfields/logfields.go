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

// Package logfields holds the canonical slog keys used across bbhtml.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field names.
const (
	KeyIterations  = "iterations"
	KeyInputBytes  = "input_bytes"
	KeyOutputBytes = "output_bytes"
	KeyDurationMS  = "duration_ms"
	KeyKind        = "kind"
	KeyPath        = "path"
	KeyEncoding    = "encoding"
	KeyError       = "error"
)

// Iterations is the number of substitutions of a conversion.
func Iterations(n int) slog.Attr { return slog.Int(KeyIterations, n) }

// InputBytes is the size of the converted input.
func InputBytes(n int) slog.Attr { return slog.Int(KeyInputBytes, n) }

// OutputBytes is the size of the conversion result.
func OutputBytes(n int) slog.Attr { return slog.Int(KeyOutputBytes, n) }

// Kind is the kind of a conversion failure.
func Kind(k string) slog.Attr { return slog.String(KeyKind, k) }

// Path is an input or output file path.
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }

// Encoding is the character encoding of the input.
func Encoding(e string) slog.Attr { return slog.String(KeyEncoding, e) }

// Duration is an elapsed time, logged in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d)/float64(time.Millisecond))
}

// Error is the message of err, empty for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
