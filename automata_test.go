package hangul

import (
	"reflect"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAssembleString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul")
	defer teardown()
	//
	for i, x := range [][2]string{
		{"", ""},
		{"ㅇㅏㅂㅓㅈㅣ", "아버지"},
		{"ㄱㅏㅂㅅㅇㅣ", "값이"},
		{"ㄷㅏㄹㄱㅏ", "달가"},
		{"ㄱㅗㅏ", "과"},
		{"ㅂㅜㅔㄹㄱ", "뷁"},
		{"ㄱ", "ㄱ"},
		{"ㄱㄴ", "ㄱㄴ"},
		{"ㅗㅏ", "ㅗㅏ"},
		{"ㅎㅏㄴ", "한"},
		{"ㅎㅏㄴ!", "한!"},
		{"한ㄱㅡㄹ", "한글"},
		{"ㄸㅏㄸ", "따ㄸ"},
		{"ㅇㅏㅂㅓㅈㅣㄱㅏ ㅂㅏㅇㅇㅔ ㄷㅡㄹㅇㅓㄱㅏㅂㄴㅣㄷㅏ", "아버지가 방에 들어갑니다"},
	} {
		if s := AssembleString(x[0]); s != x[1] {
			t.Errorf("%d: expected %q to assemble to %q, is %q", i, x[0], x[1], s)
		}
	}
}

func TestAssembleFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul")
	defer teardown()
	//
	s := Assemble([]string{"아버지가", " ", "방ㅇ", "ㅔ ", "들ㅇ", "ㅓ갑니다"})
	if s != "아버지가 방에 들어갑니다" {
		t.Errorf("expected fragments to assemble to '아버지가 방에 들어갑니다', is %q", s)
	}
	s = Assemble([]string{"아버지가", " ", "방에 ", "들어갑니다"})
	if s != "아버지가 방에 들어갑니다" {
		t.Errorf("expected syllables to be kept, is %q", s)
	}
	// a complete syllable is copied as it is and never takes a coda
	s = Assemble([]string{"들어", "가", "ㅂ니다"})
	if s != "들어가ㅂ니다" {
		t.Errorf("expected '들어가ㅂ니다', is %q", s)
	}
}

func TestAssembleConcurrently(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t)
	defer teardown()
	tracing.Select("hangul").SetTraceLevel(tracing.LevelError)
	//
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if s := AssembleString("ㄱㅏㅂㅅㅇㅣ"); s != "값이" {
					errs <- s
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for s := range errs {
		t.Errorf("concurrent assembly yields %q", s)
	}
}

func TestDisassemble(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul")
	defer teardown()
	//
	for i, x := range [][2]string{
		{"", ""},
		{"값이 비싸다", "ㄱㅏㅂㅅㅇㅣ ㅂㅣㅆㅏㄷㅏ"},
		{"의사", "ㅇㅡㅣㅅㅏ"},
		{"ㄳㅘ", "ㄱㅅㅗㅏ"},
		{"Hello", "Hello"},
	} {
		if s := Disassemble(x[0]); s != x[1] {
			t.Errorf("%d: expected %q to disassemble to %q, is %q", i, x[0], x[1], s)
		}
	}
	if s := AssembleString(Disassemble("아버지가 방에 들어갑니다")); s != "아버지가 방에 들어갑니다" {
		t.Errorf("expected round trip, have %q", s)
	}
}

func TestDisassembleToGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul")
	defer teardown()
	//
	groups := DisassembleToGroups("사과 ㄵ")
	expected := [][]string{
		{"ㅅ", "ㅏ"},
		{"ㄱ", "ㅗ", "ㅏ"},
		{" "},
		{"ㄴ", "ㅈ"},
	}
	if !reflect.DeepEqual(groups, expected) {
		t.Errorf("expected groups %v, have %v", expected, groups)
	}
}

func TestRemoveLastCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul")
	defer teardown()
	//
	for i, x := range [][2]string{
		{"", ""},
		{"안녕하세요 값", "안녕하세요 갑"},
		{"갑", "가"},
		{"가", "ㄱ"},
		{"전화", "전호"},
		{"ㄳ", "ㄱ"},
		{"ㅘ", "ㅗ"},
		{"ㄱ", ""},
		{"abc", "ab"},
	} {
		if s := RemoveLastCharacter(x[0]); s != x[1] {
			t.Errorf("%d: expected %q to shrink to %q, is %q", i, x[0], x[1], s)
		}
	}
}

func TestOnsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul")
	defer teardown()
	//
	if s := Onsets("라면 먹자!"); s != "ㄹㅁ ㅁㅈ!" {
		t.Errorf("expected onsets 'ㄹㅁ ㅁㅈ!', have %q", s)
	}
	if !OnsetIncludes("사과", "ㅅㄱ") || OnsetIncludes("사과", "ㄱㅅ") {
		t.Errorf("OnsetIncludes is broken")
	}
}
