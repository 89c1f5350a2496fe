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

// Render appends the HTML fragment for the match m found in doc to dst.
// Captured text is copied as is, without any HTML escaping.
func Render(dst, doc []byte, m Match) []byte {
	t := &tags[m.tag]
	body := m.Body.In(doc)

	switch t.Family {
	case FamilyURL:
		dst = append(dst, t.Open...)

		if m.Target.Ok() {
			dst = append(dst, m.Target.In(doc)...)
		} else {
			dst = append(dst, '#')
		}

		dst = append(dst, t.Sep...)
		dst = append(dst, body...)

	case FamilyImage:
		dst = append(append(dst, t.Open...), body...)
		dst = append(dst, '"')

		if m.Width.Ok() {
			dst = append(append(dst, " width="...), m.Width.In(doc)...)
			dst = append(append(dst, " height="...), m.Height.In(doc)...)
		}

		dst = append(dst, t.Sep...)

	case FamilyColor:
		dst = append(append(dst, t.Open...), m.Value.In(doc)...)
		dst = append(append(dst, t.Sep...), body...)

	case FamilySize:
		dst = append(dst, t.Open...)

		if m.Value.Len() > 0 {
			dst = append(append(dst, m.Value.In(doc)...), t.Sep...)
		} else {
			dst = append(dst, "inherit;\">"...)
		}

		dst = append(dst, body...)

	default:
		dst = append(append(dst, t.Open...), body...)
	}

	return append(dst, t.End...)
}
