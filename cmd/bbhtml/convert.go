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

package main

import (
	"bytes"
	"errors"
	"os"
)

// ConvertCmd implements the 'convert' command.
type ConvertCmd struct {
	Files  []string `arg:"" optional:"" help:"Input files; standard input when none is given"`
	Output string   `short:"o" type:"path" help:"Output file; standard output when empty"`
}

// Run converts every input and writes the results in order. Nothing is
// written when any input fails.
func (c *ConvertCmd) Run(e *env) error {
	if c.Output != "" && len(c.Files) > 1 {
		return errors.New("--output accepts a single input file")
	}

	var out bytes.Buffer

	if len(c.Files) == 0 {
		res, err := e.convert(e.stdin, "-")

		if err != nil {
			return err
		}

		out.Write(res)
	}

	for _, name := range c.Files {
		res, err := e.convertFile(name)

		if err != nil {
			return err
		}

		out.Write(res)
	}

	if c.Output != "" {
		return os.WriteFile(c.Output, out.Bytes(), 0o644)
	}

	_, err := out.WriteTo(e.stdout)
	return err
}
