package numeral

import (
	"fmt"
)

var nativeOnes = [10]string{"", "하나", "둘", "셋", "넷", "다섯", "여섯", "일곱", "여덟", "아홉"}

// determiner forms, used in front of a counter: 한 개, 두 사람
var nativeOnesDeterminer = [10]string{"", "한", "두", "세", "네", "다섯", "여섯", "일곱", "여덟", "아홉"}

var nativeTens = [10]string{"", "열", "스물", "서른", "마흔", "쉰", "예순", "일흔", "여든", "아흔"}

var dayNames = [11]string{"", "하루", "이틀", "사흘", "나흘", "닷새", "엿새", "이레", "여드레", "아흐레", "열흘"}

// Native spells n with native Korean numerals. n has to be in the range
// 1…100; 100 is spelled with the Sino-Korean 백, as the native word for it
// is obsolete. If determiner is set, Native returns the form used in front
// of a counter (세 개, 스무 살).
func Native(n int, determiner bool) (string, error) {
	if n <= 0 || n > 100 {
		return "", fmt.Errorf("native numeral for %d: %w", n, ErrOutOfRange)
	}
	if n == 100 {
		return Sino(100), nil
	}
	tens, ones := n/10, n%10
	if !determiner {
		return nativeTens[tens] + nativeOnes[ones], nil
	}
	if tens == 2 && ones == 0 {
		return "스무", nil
	}
	return nativeTens[tens] + nativeOnesDeterminer[ones], nil
}

// Days spells a number of days (하루, 이틀, …) for n in the range 1…30.
func Days(n int) (string, error) {
	if n <= 0 || n > 30 {
		return "", fmt.Errorf("number of days %d: %w", n, ErrOutOfRange)
	}
	if n <= 10 {
		return dayNames[n], nil
	}
	tens, ones := n/10, n%10
	switch {
	case n == 20:
		return "스무날", nil
	case n == 30:
		return "서른날", nil
	case tens == 1:
		return "열" + dayNames[ones], nil
	}
	return "스무" + dayNames[ones], nil
}

// Ordinal spells the ordinal number n (첫째, 둘째, …). n has to be
// positive. From 100 on, ordinals are built from Sino-Korean numerals.
func Ordinal(n int) (string, error) {
	switch {
	case n <= 0:
		return "", fmt.Errorf("ordinal %d: %w", n, ErrOutOfRange)
	case n == 1:
		return "첫째", nil
	case n == 2:
		return "둘째", nil
	case n >= 100:
		return Sino(int64(n)) + "째", nil
	}
	tens, ones := n/10, n%10
	if tens == 2 && ones == 0 {
		return "스무째", nil
	}
	// 1 and 2 take the determiner form, others the plain form: 열한째, 열셋째
	name := nativeOnes[ones]
	if ones <= 2 {
		name = nativeOnesDeterminer[ones]
	}
	return nativeTens[tens] + name + "째", nil
}
