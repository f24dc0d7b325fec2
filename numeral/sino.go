package numeral

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Errors returned by the spelling functions.
var (
	ErrTooLarge   = errors.New("number exceeds largest unit")
	ErrNotANumber = errors.New("not a number")
	ErrOutOfRange = errors.New("number out of range")
)

var digitNames = [10]string{"영", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}

// units within a group of four digits
var smallUnits = [4]string{"", "십", "백", "천"}

// units of groups of four digits, in ascending order
var largeUnits = []string{"", "만", "억", "조", "경", "해", "자", "양", "구", "간",
	"정", "재", "극", "항하사", "아승기", "나유타", "불가사의", "무량대수"}

// MaxDigits is the length of the longest integer the spelling functions
// are able to handle.
const MaxDigits = 72

const (
	minus    = "마이너스"
	infinity = "무한대"
	point    = "점"
)

// Option configures the spelling of numbers.
type Option func(*config)

type config struct {
	spacing bool
}

// WithSpacing puts a space between groups of four digits, after a minus
// sign and after a decimal point, following the Korean spacing rules
// for numbers (일억 이천삼백사십오만 육천칠백팔십).
func WithSpacing() Option {
	return func(c *config) {
		c.spacing = true
	}
}

func configure(opts []Option) config {
	var conf config
	for _, opt := range opts {
		opt(&conf)
	}
	return conf
}

func (c config) sep() string {
	if c.spacing {
		return " "
	}
	return ""
}

// Sino spells n with Sino-Korean numerals. Within the lowest group of four
// digits a leading 일 is dropped before 십, 백 and 천 (천백 for 1100), but
// kept in higher groups (일천일백만 for 11,000,000).
func Sino(n int64, opts ...Option) string {
	conf := configure(opts)
	if n == 0 {
		return digitNames[0]
	}
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	s, err := spellDigits(strconv.FormatUint(u, 10), conf)
	if err != nil { // cannot happen for 20 digits
		panic(err)
	}
	if n < 0 {
		return minus + conf.sep() + s
	}
	return s
}

// Float spells f with Sino-Korean numerals. Digits after the decimal point
// are read one by one (영점영일 for 0.01). f must not be NaN; infinite
// values are spelled 무한대.
func Float(f float64, opts ...Option) (string, error) {
	conf := configure(opts)
	if math.IsNaN(f) {
		return "", ErrNotANumber
	}
	var b strings.Builder
	if f < 0 {
		b.WriteString(minus)
		b.WriteString(conf.sep())
	}
	if math.IsInf(f, 0) {
		b.WriteString(infinity)
		return b.String(), nil
	}
	integer, fraction, _ := strings.Cut(strconv.FormatFloat(math.Abs(f), 'f', -1, 64), ".")
	s, err := spellDecimal(integer, fraction, conf)
	if err != nil {
		return "", fmt.Errorf("cannot spell %g: %w", f, err)
	}
	b.WriteString(s)
	return b.String(), nil
}

// Amount spells a monetary amount given as a string. Characters other than
// digits are ignored ("120,030원"), except for a decimal point and a
// leading minus sign. Amounts may be arbitrarily large, as long as they
// do not exceed MaxDigits. If amount does not contain any digits, Amount
// returns the empty string.
func Amount(amount string, opts ...Option) (string, error) {
	conf := configure(opts)
	var integer, fraction strings.Builder
	negative, decimal, digits := false, false, false
	for _, r := range amount {
		switch {
		case r >= '0' && r <= '9':
			digits = true
			if decimal {
				fraction.WriteRune(r)
			} else {
				integer.WriteRune(r)
			}
		case r == '.' && !decimal:
			decimal = true
		case r == '-' && !digits && !decimal:
			negative = true
		}
	}
	if !digits {
		return "", nil
	}
	s, err := spellDecimal(integer.String(), fraction.String(), conf)
	if err != nil {
		return "", fmt.Errorf("cannot spell amount %q: %w", amount, err)
	}
	if negative && s != digitNames[0] {
		s = minus + conf.sep() + s
	}
	return s, nil
}

// spellDecimal spells a non-negative decimal number, given as strings of
// digits before and after the decimal point.
func spellDecimal(integer, fraction string, conf config) (string, error) {
	s, err := spellDigits(integer, conf)
	if err != nil {
		return "", err
	}
	fraction = strings.TrimRight(fraction, "0")
	if fraction == "" {
		return s, nil
	}
	var b strings.Builder
	b.WriteString(s)
	b.WriteString(point)
	b.WriteString(conf.sep())
	for _, d := range fraction {
		b.WriteString(digitNames[d-'0'])
	}
	return b.String(), nil
}

// spellDigits spells a string of decimal digits.
func spellDigits(digits string, conf config) (string, error) {
	groups, err := digitGroups(digits)
	if err != nil {
		return "", err
	}
	var parts []string
	for i, group := range groups {
		unit := len(groups) - 1 - i
		if s := spellGroup(group, unit == 0); s != "" {
			parts = append(parts, s+largeUnits[unit])
		}
	}
	if len(parts) == 0 {
		return digitNames[0], nil
	}
	return strings.Join(parts, conf.sep()), nil
}

// digitGroups splits digits into groups of four, most significant first.
// Leading zeros are dropped.
func digitGroups(digits string) ([][]rune, error) {
	digits = strings.TrimLeft(digits, "0")
	if len(digits) > MaxDigits {
		return nil, fmt.Errorf("%d digits: %w", len(digits), ErrTooLarge)
	}
	if pad := len(digits) % 4; pad > 0 {
		digits = strings.Repeat("0", 4-pad) + digits
	}
	tracer().Debugf("spelling digits %s", digits)
	return lo.Chunk([]rune(digits), 4), nil
}

// spellGroup spells a group of four digits. omitOne drops 일 before 십, 백
// and 천.
func spellGroup(group []rune, omitOne bool) string {
	var b strings.Builder
	for i, r := range group {
		d := r - '0'
		unit := len(group) - 1 - i
		if d == 0 {
			continue
		}
		if d != 1 || unit == 0 || !omitOne {
			b.WriteString(digitNames[d])
		}
		b.WriteString(smallUnits[unit])
	}
	return b.String()
}

// --- Mixed notation --------------------------------------------------------

var printer = message.NewPrinter(language.Korean)

// Mixed writes n in the mixed notation of digits and Korean units common in
// newspapers and price tags: groups of four digits are written with digits
// and a thousands separator, followed by their unit.
//
//    Mixed(123456780)  =>  "1억2,345만6,780"
//
func Mixed(n int64, opts ...Option) string {
	conf := configure(opts)
	if n == 0 {
		return "0"
	}
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	s := mixedDigits(strconv.FormatUint(u, 10), conf)
	if n < 0 {
		return "-" + s
	}
	return s
}

// MixedFloat is like Mixed, but for floating point numbers. Digits after
// the decimal point are copied.
func MixedFloat(f float64, opts ...Option) (string, error) {
	conf := configure(opts)
	if math.IsNaN(f) {
		return "", ErrNotANumber
	}
	sign := ""
	if f < 0 {
		sign = "-"
	}
	if math.IsInf(f, 0) {
		return sign + infinity, nil
	}
	if f == 0 {
		return "0", nil
	}
	integer, fraction, _ := strings.Cut(strconv.FormatFloat(math.Abs(f), 'f', -1, 64), ".")
	integer = strings.TrimLeft(integer, "0")
	if len(integer) > MaxDigits {
		return "", fmt.Errorf("cannot write %g: %w", f, ErrTooLarge)
	}
	s := "0"
	if integer != "" {
		s = mixedDigits(integer, conf)
	}
	if fraction != "" {
		s += "." + fraction
	}
	return sign + s, nil
}

func mixedDigits(digits string, conf config) string {
	groups, err := digitGroups(digits)
	if err != nil {
		panic(err) // callers check the length
	}
	var parts []string
	for i, group := range groups {
		unit := len(groups) - 1 - i
		v, _ := strconv.Atoi(string(group))
		if v == 0 {
			continue
		}
		parts = append(parts, printer.Sprintf("%d", v)+largeUnits[unit])
	}
	return strings.Join(parts, conf.sep())
}

