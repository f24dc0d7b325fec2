/*
Package romanize transcribes Korean text into Latin letters, following the
Revised Romanization of Korean (국어의 로마자 표기법, 2000).

The Revised Romanization transcribes pronunciation, not spelling. Text is
therefore first converted to its standard pronunciation by package
pronounce, then every syllable is mapped onto Latin letters, jamo by jamo.
Tensification is not reflected in the romanization, thus the conversion is
done without it:

    Romanize("압구정")   =>  "apgujeong"
    Romanize("왕십리")   =>  "wangsimni"

A ㄹ at the start of a syllable is transcribed as 'r', except when it
follows a ㄹ coda, where the pair is transcribed as 'll' (신라 → silla).
Stand-alone jamo are transcribed as they would be at the start of a
syllable. Characters other than Hangul are copied unchanged.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package romanize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hangul.romanize'.
func tracer() tracing.Trace {
	return tracing.Select("hangul.romanize")
}
