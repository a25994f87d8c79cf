package fits

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CardSize is the length of one header record.
const CardSize = 80

// keySize is the width of the keyword field.
const keySize = 8

// Record is one header card.
type Record struct {
	// Key is the upper-cased keyword with trailing blanks removed.
	Key string

	// Value is the raw value text. String values keep their quotes; use
	// StringValue to decode them. Empty for commentary records.
	Value string

	// Comment is the comment text, or the full text of a commentary record.
	Comment string

	card string
}

// Card returns the 80-character card image.
func (r Record) Card() string {
	return r.card
}

func (r Record) String() string {
	return strings.TrimRight(r.card, " ")
}

// ParseRecord parses a card image. Cards shorter than 80 characters are padded
// with blanks; longer ones and cards with non-printable characters are
// rejected with ErrMalformed.
func ParseRecord(card string) (Record, error) {
	if len(card) > CardSize {
		return Record{}, fmt.Errorf("%w: %d characters", ErrMalformed, len(card))
	}
	for i := 0; i < len(card); i++ {
		if card[i] < 0x20 || card[i] > 0x7e {
			return Record{}, fmt.Errorf("%w: byte 0x%02x at column %d", ErrMalformed, card[i], i+1)
		}
	}
	card = pad(card, CardSize)

	key := strings.TrimRight(card[:keySize], " ")
	if !validKey(key) {
		return Record{}, fmt.Errorf("%w: keyword %q", ErrMalformed, key)
	}
	rec := Record{Key: strings.ToUpper(key), card: card}

	if card[keySize:keySize+2] != "= " || isCommentary(rec.Key) {
		rec.Comment = strings.TrimRight(card[keySize:], " ")
		return rec, nil
	}

	field := strings.TrimLeft(card[keySize+2:], " ")
	if strings.HasPrefix(field, "'") {
		end := closingQuote(field)
		if end < 0 {
			return Record{}, fmt.Errorf("%w: unterminated string in %s", ErrMalformed, rec.Key)
		}
		rec.Value = field[:end+1]
		field = field[end+1:]
		if i := strings.IndexByte(field, '/'); i >= 0 {
			rec.Comment = strings.TrimSpace(field[i+1:])
		}
		return rec, nil
	}

	if i := strings.IndexByte(field, '/'); i >= 0 {
		rec.Comment = strings.TrimSpace(field[i+1:])
		field = field[:i]
	}
	rec.Value = strings.TrimSpace(field)
	return rec, nil
}

// NewRecord formats a fixed-format card. value may be a bool, an integer, a
// float64 or a string.
func NewRecord(key string, value any, comment string) (Record, error) {
	if len(key) > keySize || !validKey(key) {
		return Record{}, fmt.Errorf("%w: keyword %q", ErrMalformed, key)
	}

	var field string
	switch v := value.(type) {
	case bool:
		s := "F"
		if v {
			s = "T"
		}
		field = fmt.Sprintf("%20s", s)
	case int:
		field = fmt.Sprintf("%20d", v)
	case int64:
		field = fmt.Sprintf("%20d", v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, fmt.Errorf("%w: %s value %v", ErrMalformed, key, v)
		}
		s := strconv.FormatFloat(v, 'G', -1, 64)
		if !strings.ContainsAny(s, ".E") {
			s += ".0"
		}
		field = fmt.Sprintf("%20s", s)
	case string:
		quoted := "'" + pad(strings.ReplaceAll(v, "'", "''"), 8) + "'"
		if len(quoted) > CardSize-keySize-2 {
			return Record{}, fmt.Errorf("%w: %s string too long", ErrMalformed, key)
		}
		field = quoted
	default:
		return Record{}, fmt.Errorf("%w: %s has unsupported value type %T", ErrMalformed, key, value)
	}

	card := pad(key, keySize) + "= " + field
	if comment != "" {
		card += " / " + comment
	}
	if len(card) > CardSize {
		card = card[:CardSize]
	}
	return ParseRecord(card)
}

// WithKey returns a copy of r under a different keyword. The value and
// comment columns of the card image are kept as they are.
func (r Record) WithKey(key string) (Record, error) {
	if len(key) > keySize || !validKey(key) {
		return Record{}, fmt.Errorf("%w: keyword %q", ErrMalformed, key)
	}
	return ParseRecord(pad(key, keySize) + r.card[keySize:])
}

// StringValue decodes a quoted string value. Trailing blanks are not
// significant and are removed.
func (r Record) StringValue() (string, error) {
	v := r.Value
	if len(v) < 2 || v[0] != '\'' || v[len(v)-1] != '\'' {
		return "", fmt.Errorf("%s: value %q is not a string", r.Key, v)
	}
	return strings.TrimRight(strings.ReplaceAll(v[1:len(v)-1], "''", "'"), " "), nil
}

// IntValue decodes an integer value.
func (r Record) IntValue() (int64, error) {
	n, err := strconv.ParseInt(r.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: value %q is not an integer", r.Key, r.Value)
	}
	return n, nil
}

// FloatValue decodes a real or integer value. Fortran D exponents are
// accepted.
func (r Record) FloatValue() (float64, error) {
	s := strings.Replace(strings.Replace(r.Value, "D", "E", 1), "d", "e", 1)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: value %q is not a number", r.Key, r.Value)
	}
	return f, nil
}

// BoolValue decodes a logical value.
func (r Record) BoolValue() (bool, error) {
	switch r.Value {
	case "T":
		return true, nil
	case "F":
		return false, nil
	}
	return false, fmt.Errorf("%s: value %q is not logical", r.Key, r.Value)
}

// closingQuote returns the index of the quote ending the string that starts
// at s[0], skipping doubled quotes, or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			i++
			continue
		}
		return i
	}
	return -1
}

func isCommentary(key string) bool {
	switch key {
	case "", "COMMENT", "HISTORY", "END":
		return true
	}
	return false
}

// validKey accepts the keyword characters of the standard, with lower case
// tolerated as many writers emit it.
func validKey(key string) bool {
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
