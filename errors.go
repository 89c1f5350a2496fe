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
	"errors"
	"fmt"
)

// Kind classifies conversion failures.
type Kind int

const (
	// KindAllocation means the document outgrew the configured size limit.
	KindAllocation Kind = iota + 1
	// KindGrammar means the tag grammar could not be compiled.
	KindGrammar
	// KindBudget means the iteration limit was reached before the document converged.
	KindBudget
	// KindCanceled means the context was canceled or its deadline expired.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindAllocation:
		return "allocation"
	case KindGrammar:
		return "grammar"
	case KindBudget:
		return "budget"
	case KindCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel causes, for use with errors.Is.
var (
	ErrDocumentTooLarge = errors.New("document exceeds size limit")
	ErrGrammar          = errors.New("tag grammar compilation failed")
	ErrIterationLimit   = errors.New("iteration limit reached")
)

// Error is the error type returned by the converter. No partial output
// accompanies it.
type Error struct {
	Kind       Kind
	Op         string
	Iterations int // substitutions completed before the failure
	Err        error
}

func (e *Error) Error() string {
	if e.Iterations > 0 {
		return fmt.Sprintf("bbhtml: %s [%s] after %d substitutions: %v", e.Op, e.Kind, e.Iterations, e.Err)
	}

	return fmt.Sprintf("bbhtml: %s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or 0 if err did not come from this package.
func KindOf(err error) Kind {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
