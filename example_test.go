package hangul_test

import (
	"fmt"

	"github.com/npillmayer/hangul"
)

func ExampleAssembleString() {
	fmt.Println(hangul.AssembleString("ㄱㅏㅂㅅㅇㅣ ㅂㅣㅆㅏㄷㅏ"))
	// Output: 값이 비싸다
}

func ExampleDisassemble() {
	fmt.Println(hangul.Disassemble("의사"))
	// Output: ㅇㅡㅣㅅㅏ
}

func ExampleDecompose() {
	s, _ := hangul.Decompose('값')
	fmt.Printf("%c %c %s\n", s.Onset, s.Nucleus, s.Coda)
	// Output: ㄱ ㅏ ㅄ
}

func ExampleRemoveLastCharacter() {
	fmt.Println(hangul.RemoveLastCharacter("전화"))
	// Output: 전호
}
