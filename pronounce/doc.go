/*
Package pronounce converts Korean text to its standard pronunciation.

Hangul spelling is morphophonemic: a word is spelled the same way regardless
of the sounds surrounding it, but its pronunciation changes with the
neighbouring syllables. Package pronounce implements the rules of the
Standard Pronunciation of Korean (표준 발음법), published by the National
Institute of Korean Language, as far as they can be applied without a
dictionary:

    rule  9–11   neutralization of final consonants      닦다 → 닥따
    rule 12      ㅎ aspiration and elision               놓고 → 노코
    rule 13, 14  liaison of final consonants             닭을 → 달글
    rule 16      names of the jamo                       디귿이 → 디그시
    rule 17      palatalization                          굳이 → 구지
    rule 18      nasalization                            먹는 → 멍는
    rule 19, 20  ㄹ after nasals, lateralization          신라 → 실라
    rule 23–25   tensification                           국밥 → 국빱
    ㄴ/ㄹ epenthesis                                      학여울 → 항녀울

The result is written in Hangul again. Rules are applied within a phrase,
i.e. between spaces, never across them. A small dictionary of irregular
words, which have to be looked up as a whole, is consulted first.

Tensification may be switched off, as clients which romanize the result
usually do not want to see it:

    pronounce.Standardize("국밥")                              // 국빱
    pronounce.Standardize("국밥", pronounce.HardConversion(false)) // 국밥

Characters other than precomposed syllables are copied to the output
unchanged, at their original position.

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
package pronounce

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'hangul.pronounce'.
func tracer() tracing.Trace {
	return tracing.Select("hangul.pronounce")
}
