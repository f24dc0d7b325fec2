package romanize

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRomanize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.romanize")
	defer teardown()
	//
	for _, group := range []struct {
		name  string
		cases [][2]string
	}{
		{"assimilation", [][2]string{
			{"백마", "baengma"},
			{"종로", "jongno"},
			{"왕십리", "wangsimni"},
			{"별래", "byeollae"},
			{"신라", "silla"},
		}},
		{"epenthesis", [][2]string{
			{"학여울", "hangnyeoul"},
			{"알약", "allyak"},
			{"호랑이", "horangi"},
			{"빨간색이에요", "ppalgansaegieyo"},
		}},
		{"palatalization", [][2]string{
			{"해돋이", "haedoji"},
			{"같이", "gachi"},
			{"굳히다", "guchida"},
		}},
		{"aspiration", [][2]string{
			{"좋고", "joko"},
			{"놓다", "nota"},
			{"잡혀", "japyeo"},
			{"낳지", "nachi"},
		}},
		{"no tensification", [][2]string{
			{"압구정", "apgujeong"},
			{"낙동강", "nakdonggang"},
			{"죽변", "jukbyeon"},
			{"낙성대", "nakseongdae"},
			{"합정", "hapjeong"},
			{"팔당", "paldang"},
			{"샛별", "saetbyeol"},
			{"울산", "ulsan"},
		}},
		{"position of consonant", [][2]string{
			{"구미", "gumi"},
			{"영동", "yeongdong"},
			{"백암", "baegam"},
			{"옥천", "okcheon"},
			{"합덕", "hapdeok"},
			{"호법", "hobeop"},
			{"월곶", "wolgot"},
			{"벚꽃", "beotkkot"},
			{"한밭", "hanbat"},
		}},
		{"rieul", [][2]string{
			{"구리", "guri"},
			{"설악", "seorak"},
			{"칠곡", "chilgok"},
			{"임실", "imsil"},
			{"울릉", "ulleung"},
			{"대관령", "daegwallyeong"},
		}},
		{"stand-alone jamo", [][2]string{
			{"ㄱ", "g"},
			{"가나다라ㅁㅂㅅㅇ", "ganadarambs"},
			{"ㅏ", "a"},
			{"ㅘ", "wa"},
		}},
		{"punctuation", [][2]string{
			{"안녕하세요.", "annyeonghaseyo."},
			{"한국어!", "hangugeo!"},
			{"", ""},
			{"!?/", "!?/"},
		}},
		{"mixed scripts", [][2]string{
			{"안녕하세요 es-hangul", "annyeonghaseyo es-hangul"},
			{"한국은korea", "hangugeunkorea"},
			{"고양이는cat", "goyangineuncat"},
		}},
	} {
		t.Run(group.name, func(t *testing.T) {
			for _, c := range group.cases {
				assert.Equal(t, c[1], Romanize(c[0]), "romanization of %q", c[0])
			}
		})
	}
}

func TestFollowsLateral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.romanize")
	defer teardown()
	//
	assert.True(t, followsLateral('일'))
	assert.True(t, followsLateral('실'))
	assert.False(t, followsLateral('닭'), "compound coda ㄺ is not a lateral")
	assert.False(t, followsLateral('ㄹ'))
}
