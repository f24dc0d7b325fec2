/*
Package numeral spells numbers in Korean.

Korean uses two sets of numerals. Sino-Korean numerals (일, 이, 삼, …) are
used for counting money, dates, phone numbers and most measurements; they
group digits by four, not by three: 12,345 is 1만 2345, spelled 일만이천삼백사십오.
Native Korean numerals (하나, 둘, 셋, …) exist for 1 to 99 and are used for
counting items and for age, hours, and ordinals.

    numeral.Sino(123456780)                       =>  "일억이천삼백사십오만육천칠백팔십"
    numeral.Sino(123456780, numeral.WithSpacing())  =>  "일억 이천삼백사십오만 육천칠백팔십"
    numeral.Mixed(123456780)                      =>  "1억2,345만6,780"
    numeral.Native(21, true)                      =>  "스물한"

Large units go beyond the range of int64: Amount spells arbitrary digit
strings up to 무량대수 (10^68).

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
package numeral

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hangul.numeral'.
func tracer() tracing.Trace {
	return tracing.Select("hangul.numeral")
}
