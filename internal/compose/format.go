package compose

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

type formatSpec struct {
	fill      rune
	align     byte
	sign      byte
	zero      bool
	width     int
	precision int
	verb      byte
}

func parseSpec(raw string) (formatSpec, error) {
	spec := formatSpec{fill: ' ', precision: -1}
	if raw == "" {
		return spec, nil
	}
	rest := raw

	if r, size := utf8.DecodeRuneInString(rest); size < len(rest) && isAlign(rest[size]) {
		spec.fill, spec.align = r, rest[size]
		rest = rest[size+1:]
	} else if isAlign(rest[0]) {
		spec.align = rest[0]
		rest = rest[1:]
	}
	if rest != "" && (rest[0] == '+' || rest[0] == '-' || rest[0] == ' ') {
		spec.sign = rest[0]
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '0' {
		spec.zero = true
		rest = rest[1:]
	}

	digits := leadingDigits(rest)
	if digits != "" {
		spec.width, _ = strconv.Atoi(digits)
		rest = rest[len(digits):]
	}
	if rest != "" && rest[0] == '.' {
		digits = leadingDigits(rest[1:])
		if digits == "" {
			return spec, fmt.Errorf("missing precision in format spec %q", raw)
		}
		spec.precision, _ = strconv.Atoi(digits)
		rest = rest[1+len(digits):]
	}

	switch {
	case rest == "":
	case len(rest) == 1 && strings.ContainsRune("sdxXobfFeEgG%", rune(rest[0])):
		spec.verb = rest[0]
	default:
		return spec, fmt.Errorf("invalid format spec %q", raw)
	}
	return spec, nil
}

func isAlign(c byte) bool {
	return c == '<' || c == '>' || c == '^' || c == '='
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

func (s formatSpec) format(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return s.formatString(v)
	case int64:
		return s.formatInt(v)
	case int:
		return s.formatInt(int64(v))
	case float64:
		return s.formatFloat(v)
	case bool:
		if s.verb != 0 && s.verb != 's' {
			return s.formatInt(boolInt(v))
		}
		if v {
			return s.formatString("True")
		}
		return s.formatString("False")
	default:
		return s.formatString(fmt.Sprint(v))
	}
}

func boolInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func (s formatSpec) formatString(v string) (string, error) {
	if s.verb != 0 && s.verb != 's' {
		return "", fmt.Errorf("format code %q is not valid for a string", s.verb)
	}
	if s.sign != 0 {
		return "", fmt.Errorf("sign not allowed in string format spec")
	}
	if s.align == '=' {
		return "", fmt.Errorf("'=' alignment not allowed in string format spec")
	}
	if s.precision >= 0 && utf8.RuneCountInString(v) > s.precision {
		v = string([]rune(v)[:s.precision])
	}
	return s.pad("", v, '<'), nil
}

func (s formatSpec) formatInt(v int64) (string, error) {
	var body string
	mag := v
	if mag < 0 {
		mag = -mag
	}
	switch s.verb {
	case 0, 'd':
		if s.precision >= 0 {
			return "", fmt.Errorf("precision not allowed in integer format spec")
		}
		body = strconv.FormatUint(uint64(mag), 10)
	case 'x':
		body = strconv.FormatUint(uint64(mag), 16)
	case 'X':
		body = strings.ToUpper(strconv.FormatUint(uint64(mag), 16))
	case 'o':
		body = strconv.FormatUint(uint64(mag), 8)
	case 'b':
		body = strconv.FormatUint(uint64(mag), 2)
	case 'f', 'F', 'e', 'E', 'g', 'G', '%':
		return s.formatFloat(float64(v))
	default:
		return "", fmt.Errorf("format code %q is not valid for an integer", s.verb)
	}
	return s.pad(s.signPrefix(v < 0), body, '>'), nil
}

func (s formatSpec) formatFloat(v float64) (string, error) {
	neg := math.Signbit(v) && !math.IsNaN(v)
	mag := math.Abs(v)
	var body string
	switch s.verb {
	case 0:
		if s.precision >= 0 {
			body = formatGeneral(mag, s.precision, false)
		} else {
			body = PythonFloat(mag)
		}
	case 'f', 'F':
		body = strconv.FormatFloat(mag, 'f', s.precisionOr(6), 64)
	case 'e', 'E':
		body = strconv.FormatFloat(mag, 'e', s.precisionOr(6), 64)
	case 'g', 'G':
		body = formatGeneral(mag, s.precisionOr(6), true)
	case '%':
		body = strconv.FormatFloat(mag*100, 'f', s.precisionOr(6), 64) + "%"
	default:
		return "", fmt.Errorf("format code %q is not valid for a float", s.verb)
	}
	switch {
	case math.IsInf(mag, 0):
		body = "inf"
	case math.IsNaN(mag):
		body = "nan"
	}
	if s.verb == 'F' || s.verb == 'E' || s.verb == 'G' {
		body = strings.ToUpper(body)
	}
	return s.pad(s.signPrefix(neg), body, '>'), nil
}

func (s formatSpec) precisionOr(fallback int) int {
	if s.precision >= 0 {
		return s.precision
	}
	return fallback
}

func (s formatSpec) signPrefix(negative bool) string {
	switch {
	case negative:
		return "-"
	case s.sign == '+':
		return "+"
	case s.sign == ' ':
		return " "
	default:
		return ""
	}
}

// pad applies width, fill, and alignment. The zero flag without an explicit
// alignment pads with zeros between sign and digits.
func (s formatSpec) pad(sign, body string, defaultAlign byte) string {
	fill, align := s.fill, s.align
	if s.zero && align == 0 {
		fill, align = '0', '='
	}
	if align == 0 {
		align = defaultAlign
	}
	gap := s.width - utf8.RuneCountInString(sign) - utf8.RuneCountInString(body)
	if gap <= 0 {
		return sign + body
	}
	padding := func(n int) string { return strings.Repeat(string(fill), n) }
	switch align {
	case '<':
		return sign + body + padding(gap)
	case '^':
		return padding(gap/2) + sign + body + padding(gap-gap/2)
	case '=':
		return sign + padding(gap) + body
	default:
		return padding(gap) + sign + body
	}
}

// PythonFloat renders a float the way Python's str() does: the shortest
// round-tripping digits, a trailing ".0" for integral values, and exponent
// notation outside 1e-4 <= |v| < 1e16.
func PythonFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	if v == 0 {
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	exp := decimalExponent(v)
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

func decimalExponent(v float64) int {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	idx := strings.LastIndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[idx+1:])
	return exp
}

// formatGeneral follows Python's 'g' presentation. Without the explicit
// type, integral results keep a ".0" suffix as Python does for the empty
// type with a precision.
func formatGeneral(v float64, precision int, explicit bool) string {
	if precision == 0 {
		precision = 1
	}
	if v == 0 {
		if explicit {
			return "0"
		}
		return "0.0"
	}
	rounded := strconv.FormatFloat(v, 'e', precision-1, 64)
	exp := decimalExponent(mustParse(rounded))
	var s string
	if exp < -4 || exp >= precision {
		s = strconv.FormatFloat(v, 'e', precision-1, 64)
		mant, e, _ := strings.Cut(s, "e")
		s = trimFraction(mant) + "e" + e
	} else {
		s = trimFraction(strconv.FormatFloat(v, 'f', precision-1-exp, 64))
		if !explicit && !strings.Contains(s, ".") {
			s += ".0"
		}
	}
	return s
}

func mustParse(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
