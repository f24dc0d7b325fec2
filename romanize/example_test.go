package romanize_test

import (
	"fmt"

	"github.com/npillmayer/hangul/romanize"
)

func ExampleRomanize() {
	fmt.Println(romanize.Romanize("대관령"))
	fmt.Println(romanize.Romanize("안녕하세요 es-hangul"))
	// Output:
	// daegwallyeong
	// annyeonghaseyo es-hangul
}
