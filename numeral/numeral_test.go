package numeral

import (
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSino(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.numeral")
	defer teardown()
	//
	for _, c := range []struct {
		n        int64
		expected string
	}{
		{210_000, "이십일만"},
		{12_345, "일만이천삼백사십오"},
		{123_456_780, "일억이천삼백사십오만육천칠백팔십"},
		{100_000_000, "일억"},
		{1_000_000_000_000, "일조"},
		{0, "영"},
		{1, "일"},
		{2, "이"},
		{3, "삼"},
		{4, "사"},
		{5, "오"},
		{6, "육"},
		{7, "칠"},
		{8, "팔"},
		{9, "구"},
		{10, "십"},
		{11, "십일"},
		{20, "이십"},
		{30, "삼십"},
		{100, "백"},
		{101, "백일"},
		{110, "백십"},
		{200, "이백"},
		{300, "삼백"},
		{1_000, "천"},
		{1_001, "천일"},
		{1_100, "천백"},
		{1_200, "천이백"},
		{1_234, "천이백삼십사"},
		{9_999, "구천구백구십구"},
		{-12_345, "마이너스일만이천삼백사십오"},
		{-210_000, "마이너스이십일만"},
		{-123_456_780, "마이너스일억이천삼백사십오만육천칠백팔십"},
	} {
		assert.Equal(t, c.expected, Sino(c.n), "%d", c.n)
	}
	for _, c := range []struct {
		n        int64
		expected string
	}{
		{123_456_780, "일억 이천삼백사십오만 육천칠백팔십"},
		{-210_000, "마이너스 이십일만"},
		{-12_345, "마이너스 일만 이천삼백사십오"},
		{-123_456_780, "마이너스 일억 이천삼백사십오만 육천칠백팔십"},
	} {
		assert.Equal(t, c.expected, Sino(c.n, WithSpacing()), "%d", c.n)
	}
	assert.Equal(t, "일천일백만", Sino(11_000_000), "일 is kept in higher groups")
	assert.Equal(t, "구백이십이경삼천삼백칠십이조삼백육십팔억오천사백칠십칠만오천팔백칠",
		Sino(math.MaxInt64))
	assert.Equal(t, "마이너스구백이십이경삼천삼백칠십이조삼백육십팔억오천사백칠십칠만오천팔백팔",
		Sino(math.MinInt64))
}

func TestFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.numeral")
	defer teardown()
	//
	for _, c := range []struct {
		n        float64
		expected string
	}{
		{12_345.678, "일만이천삼백사십오점육칠팔"},
		{0.1, "영점일"},
		{0.0102, "영점영일영이"},
		{-0.1, "마이너스영점일"},
		{-12_345.678, "마이너스일만이천삼백사십오점육칠팔"},
	} {
		s, err := Float(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.expected, s, "%g", c.n)
	}
	for _, c := range []struct {
		n        float64
		expected string
	}{
		{0.1, "영점 일"},
		{12_345.678, "일만 이천삼백사십오점 육칠팔"},
		{-0.1, "마이너스 영점 일"},
		{-12_345.678, "마이너스 일만 이천삼백사십오점 육칠팔"},
	} {
		s, err := Float(c.n, WithSpacing())
		require.NoError(t, err)
		assert.Equal(t, c.expected, s, "%g", c.n)
	}
	s, _ := Float(math.Inf(1))
	assert.Equal(t, "무한대", s)
	s, _ = Float(math.Inf(-1))
	assert.Equal(t, "마이너스무한대", s)
	s, _ = Float(math.Inf(-1), WithSpacing())
	assert.Equal(t, "마이너스 무한대", s)
	s, _ = Float(3)
	assert.Equal(t, "삼", s)
	_, err := Float(math.NaN())
	assert.ErrorIs(t, err, ErrNotANumber)
	_, err = Float(1e100)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestMixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.numeral")
	defer teardown()
	//
	for _, c := range []struct {
		n        int64
		expected string
	}{
		{12_345, "1만2,345"},
		{123_456_780, "1억2,345만6,780"},
		{210_000, "21만"},
		{0, "0"},
		{1, "1"},
		{10, "10"},
		{100, "100"},
		{1_000, "1,000"},
		{9_999, "9,999"},
		{-210_000, "-21만"},
		{-12_345, "-1만2,345"},
		{-123_456_780, "-1억2,345만6,780"},
	} {
		assert.Equal(t, c.expected, Mixed(c.n), "%d", c.n)
	}
	for _, c := range []struct {
		n        int64
		expected string
	}{
		{123_456_780, "1억 2,345만 6,780"},
		{210_000, "21만"},
		{12_345, "1만 2,345"},
		{-210_000, "-21만"},
		{-12_345, "-1만 2,345"},
		{-123_456_780, "-1억 2,345만 6,780"},
	} {
		assert.Equal(t, c.expected, Mixed(c.n, WithSpacing()), "%d", c.n)
	}
	for _, c := range []struct {
		n        float64
		expected string
	}{
		{0.1, "0.1"},
		{12_345.678, "1만2,345.678"},
		{-0.1, "-0.1"},
		{-12_345.678, "-1만2,345.678"},
	} {
		s, err := MixedFloat(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.expected, s, "%g", c.n)
	}
	for _, c := range []struct {
		n        float64
		expected string
	}{
		{0.1, "0.1"},
		{12_345.678, "1만 2,345.678"},
		{-0.1, "-0.1"},
		{-12_345.678, "-1만 2,345.678"},
	} {
		s, err := MixedFloat(c.n, WithSpacing())
		require.NoError(t, err)
		assert.Equal(t, c.expected, s, "%g", c.n)
	}
	s, _ := MixedFloat(math.Inf(1))
	assert.Equal(t, "무한대", s)
	s, _ = MixedFloat(math.Inf(-1), WithSpacing())
	assert.Equal(t, "-무한대", s)
	_, err := MixedFloat(math.NaN())
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestAmount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.numeral")
	defer teardown()
	//
	for _, c := range []struct {
		amount   string
		expected string
	}{
		{"15,201,100", "일천오백이십만천백"},
		{"100000000", "일억"},
		{"100000100", "일억백"},
		{"0", "영"},
		{"", ""},
		{"120,030원", "일십이만삼십"},
		{"12345.6789", "일만이천삼백사십오점육칠팔구"},
		{"0.01020", "영점영일영이"},
		{"0.0000", "영"},
		{".0000", "영"},
		{"392.24", "삼백구십이점이사"},
		{"01023", "천이십삼"},
		{"001023", "천이십삼"},
		{"0001023", "천이십삼"},
		{"-1,000원", "마이너스천"},
		{"원", ""},
	} {
		s, err := Amount(c.amount)
		require.NoError(t, err)
		assert.Equal(t, c.expected, s, "%q", c.amount)
	}
	s, err := Amount(strings.Repeat("1", 72))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "일천일백일십일무량대수"), s)
	_, err = Amount(strings.Repeat("1", 81))
	assert.ErrorIs(t, err, ErrTooLarge)
	_, err = Amount("000" + strings.Repeat("1", 72))
	assert.NoError(t, err, "leading zeros do not count")
}

func TestNative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.numeral")
	defer teardown()
	//
	for _, c := range []struct {
		n        int
		expected string
	}{
		{1, "하나"},
		{2, "둘"},
		{3, "셋"},
		{4, "넷"},
		{5, "다섯"},
		{6, "여섯"},
		{7, "일곱"},
		{8, "여덟"},
		{9, "아홉"},
		{10, "열"},
		{11, "열하나"},
		{12, "열둘"},
		{20, "스물"},
		{21, "스물하나"},
		{30, "서른"},
		{99, "아흔아홉"},
		{100, "백"},
	} {
		s, err := Native(c.n, false)
		require.NoError(t, err)
		assert.Equal(t, c.expected, s, "%d", c.n)
	}
	for _, c := range []struct {
		n        int
		expected string
	}{
		{1, "한"},
		{2, "두"},
		{3, "세"},
		{4, "네"},
		{5, "다섯"},
		{6, "여섯"},
		{7, "일곱"},
		{8, "여덟"},
		{9, "아홉"},
		{10, "열"},
		{11, "열한"},
		{12, "열두"},
		{20, "스무"},
		{21, "스물한"},
		{30, "서른"},
		{99, "아흔아홉"},
		{100, "백"},
	} {
		s, err := Native(c.n, true)
		require.NoError(t, err)
		assert.Equal(t, c.expected, s, "%d", c.n)
	}
	for _, n := range []int{0, -1, 101} {
		_, err := Native(n, false)
		assert.ErrorIs(t, err, ErrOutOfRange, "%d", n)
	}
}

func TestDays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.numeral")
	defer teardown()
	//
	for _, c := range []struct {
		n        int
		expected string
	}{
		{1, "하루"},
		{2, "이틀"},
		{3, "사흘"},
		{4, "나흘"},
		{5, "닷새"},
		{6, "엿새"},
		{7, "이레"},
		{8, "여드레"},
		{9, "아흐레"},
		{10, "열흘"},
		{11, "열하루"},
		{20, "스무날"},
		{21, "스무하루"},
		{30, "서른날"},
	} {
		s, err := Days(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.expected, s, "%d", c.n)
	}
	for _, n := range []int{0, -1, 31} {
		_, err := Days(n)
		assert.ErrorIs(t, err, ErrOutOfRange, "%d", n)
	}
}

func TestOrdinal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.numeral")
	defer teardown()
	//
	for _, c := range []struct {
		n        int
		expected string
	}{
		{1, "첫째"},
		{2, "둘째"},
		{3, "셋째"},
		{4, "넷째"},
		{5, "다섯째"},
		{6, "여섯째"},
		{7, "일곱째"},
		{8, "여덟째"},
		{9, "아홉째"},
		{10, "열째"},
		{11, "열한째"},
		{12, "열두째"},
		{13, "열셋째"},
		{14, "열넷째"},
		{15, "열다섯째"},
		{20, "스무째"},
		{21, "스물한째"},
		{22, "스물두째"},
		{30, "서른째"},
		{40, "마흔째"},
		{90, "아흔째"},
		{99, "아흔아홉째"},
		{100, "백째"},
		{101, "백일째"},
	} {
		s, err := Ordinal(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.expected, s, "%d", c.n)
	}
	for _, n := range []int{0, -1} {
		_, err := Ordinal(n)
		assert.ErrorIs(t, err, ErrOutOfRange, "%d", n)
	}
}
