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

import "time"

// Conversion outcomes reported to a Recorder.
const (
	OutcomeSuccess        = "success"
	OutcomeTooLarge       = "too_large"
	OutcomeIterationLimit = "iteration_limit"
	OutcomeCanceled       = "canceled"
)

// Recorder receives conversion metrics. Implementations must be safe for
// concurrent use; see the metrics package for a Prometheus implementation.
type Recorder interface {
	// ObserveConversion is called once per successful conversion.
	ObserveConversion(d time.Duration, iterations int)
	// IncOutcome is called once per conversion with one of the Outcome constants.
	IncOutcome(outcome string)
	// AddTags reports n rendered occurrences of the named tag.
	AddTags(tag string, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

// ObserveConversion does nothing.
func (NoopRecorder) ObserveConversion(time.Duration, int) {}

// IncOutcome does nothing.
func (NoopRecorder) IncOutcome(string) {}

// AddTags does nothing.
func (NoopRecorder) AddTags(string, int) {}
