package header

import (
	"fmt"
	"math"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// FormatQuality renders a quality factor in its canonical wire form: at
// most three fractional digits with trailing zeros dropped, so 0.5 renders
// as "0.5" and 1 renders as "1".
func FormatQuality(q float64) string {
	return strconv.FormatFloat(math.Round(q*1000)/1000, 'f', -1, 64)
}

// WeightedString is a value with an optional quality factor, the shape of
// Accept-Charset, Accept-Encoding and Accept-Language elements:
// "value;q=0.5". The quality, when present, lies in [0, 1]; out-of-range
// values are rejected at set-time.
type WeightedString struct {
	Value string

	quality    float64
	hasQuality bool
}

// NewWeightedString creates a WeightedString without a quality factor.
func NewWeightedString(value string) WeightedString {
	return WeightedString{Value: value}
}

// NewWeightedStringQ creates a WeightedString with the given quality
// factor.
func NewWeightedStringQ(value string, quality float64) (WeightedString, error) {
	ws := WeightedString{Value: value}
	if err := ws.SetQuality(quality); err != nil {
		return WeightedString{}, errtrace.Wrap(err)
	}
	return ws, nil
}

// Quality returns the quality factor and whether one is set.
func (ws WeightedString) Quality() (float64, bool) { return ws.quality, ws.hasQuality }

// SetQuality sets the quality factor. Values outside [0, 1] are rejected
// with [ErrRange] and leave the value unchanged.
func (ws *WeightedString) SetQuality(quality float64) error {
	if quality < 0 || quality > 1 || math.IsNaN(quality) {
		return errtrace.Wrap(NewRangeError("quality %v out of [0, 1]", quality))
	}
	ws.quality = quality
	ws.hasQuality = true
	return nil
}

// ClearQuality removes the quality factor.
func (ws *WeightedString) ClearQuality() {
	ws.quality = 0
	ws.hasQuality = false
}

func (ws WeightedString) String() string {
	if !ws.hasQuality {
		return ws.Value
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fmt.Fprint(sb, ws.Value, "; q=", FormatQuality(ws.quality))
	return sb.String()
}

// Equal compares this value with another for equality.
// Values compare case-insensitively, qualities exactly.
func (ws WeightedString) Equal(val any) bool {
	var other WeightedString
	switch v := val.(type) {
	case WeightedString:
		other = v
	case *WeightedString:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(ws.Value, other.Value) &&
		ws.hasQuality == other.hasQuality &&
		ws.quality == other.quality
}

// IsValid checks whether the value is syntactically valid.
func (ws WeightedString) IsValid() bool {
	return grammar.IsToken(ws.Value) &&
		(!ws.hasQuality || (ws.quality >= 0 && ws.quality <= 1))
}

// Clone returns a copy of the value.
func (ws WeightedString) Clone() Value { return ws }

func scanWeightedString(s string, start int) (int, Value, error) {
	n := grammar.TokenLen(s, start)
	if n == 0 {
		return 0, nil, nil
	}
	ws := WeightedString{Value: s[start : start+n]}
	i := start + n

	j := i + grammar.WhitespaceLen(s, i)
	if j >= len(s) || s[j] != ';' {
		return i - start, ws, nil
	}
	j++
	j += grammar.WhitespaceLen(s, j)

	pn, name, value, err := grammar.NameValueLen(s, j)
	if err != nil {
		return 0, nil, errtrace.Wrap(err)
	}
	if pn == 0 || !util.EqFold(name, "q") || value == "" {
		return 0, nil, nil
	}
	q, perr := strconv.ParseFloat(value, 64)
	if perr != nil || q < 0 || q > 1 {
		return 0, nil, nil
	}
	ws.quality = q
	ws.hasQuality = true
	return j + pn - start, ws, nil
}

// weightedListParser parses comma-separated lists of values with optional
// quality factors. The only parameter a value may carry is "q".
type weightedListParser struct{}

func (weightedListParser) MultiValue() bool { return true }

func (weightedListParser) Separator() string { return ", " }

func (weightedListParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	return errtrace.Wrap2(parseList(raw, scanWeightedString))
}
