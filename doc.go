/*
Package hangul is about the Korean script and its syllable blocks.

Description

Hangul is an alphabetic script arranged into syllable blocks. Every block
consists of an initial consonant (onset, choseong), a vowel (nucleus,
jungseong) and an optional final consonant or consonant cluster (coda,
jongseong). Unicode encodes all 11,172 possible blocks as precomposed
characters in the range U+AC00…U+D7A3, ordered arithmetically by the
indices of their components:

   syllable = 0xAC00 + (onset·21 + nucleus)·28 + coda

Besides the precomposed syllables there is the block of Hangul compatibility
jamo (U+3131…U+3163), which contains the letters of the alphabet as
stand-alone characters: ㄱ, ㅏ, ㄳ, ㅘ, etc. This is what users see while
typing with a Korean input method, before the letters are combined into a
syllable.

Package hangul provides the means to move between these two representations:

  - Decompose splits a syllable into its onset, nucleus and coda.
  - CombineCharacter builds a syllable from jamo literals and validates them.
  - Disassemble and DisassembleToGroups break text down into atomic jamo,
    splitting compound vowels (ㅘ → ㅗㅏ) and compound codas (ㄳ → ㄱㅅ), but
    never geminate consonants (ㄲ, ㅆ, …).
  - AssembleString is the inverse operation: it scans a stream of jamo
    and rebuilds syllable blocks, resolving the ambiguity of where a coda
    ends and the onset of the next syllable begins.

Jamo Tables

All tables of jamo (19 onsets, 21 nuclei, 27 codas plus "no coda", 11
compound codas and 7 compound nuclei) are built once and are read-only
afterwards. Clients may call any function of this package concurrently
without further synchronization.

Sub-packages build on these operations: package pronounce implements the
rules of the Korean standard pronunciation, package romanize the Revised
Romanization of Korean. Packages josa, keyboard and numeral are helpers
for typical application tasks.

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
package hangul

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hangul'.
func tracer() tracing.Trace {
	return tracing.Select("hangul")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
