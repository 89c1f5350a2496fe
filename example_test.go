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
	"context"
	"fmt"
)

func Example() {
	res, err := Convert("[b]Hello[/b], [url=https://example.com]world[/url]! [color=purple]unchanged[/color]")

	if err != nil {
		panic(err)
	}

	fmt.Println(res)
	// Output:
	// <strong>Hello</strong>, <a href="https://example.com">world</a>! [color=purple]unchanged[/color]
}

func ExampleConverter_Rewriter() {
	c, err := New(WithNormalizeNewlines(true))

	if err != nil {
		panic(err)
	}

	rw := Seq(
		c.Rewriter(),
		Replace(Lit("\n"), "<br>"),
	)

	fmt.Println(string(rw.Do([]byte("[i]one[/i]\r\n[img 16x16]two.png[/img]"))))
	// Output:
	// <em>one</em><br><img src="two.png" width=16 height=16>
}

func ExampleConverter_Convert() {
	c, err := New(WithEmptySize(EmptySizeInherit), WithSpanLines(false))

	if err != nil {
		panic(err)
	}

	res, err := c.Convert(context.Background(), []byte("[size=]a[/size] [quote]b\nc[/quote]"))

	if err != nil {
		panic(err)
	}

	fmt.Printf("%q\n", res)
	// Output:
	// "<div style=\"font-size:inherit;\">a</div> [quote]b\nc[/quote]"
}
