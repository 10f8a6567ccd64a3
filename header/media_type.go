package header

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// MediaType holds media type information: Content-Type and the media part
// of an Accept range. Params holds the media parameters (charset, boundary
// and the like); values may be tokens or quoted-strings.
type MediaType struct {
	Type    string
	Subtype string
	Params  Values
}

// ParseMediaType parses a media type from its wire form.
func ParseMediaType(s string) (MediaType, error) {
	val, err := parseOne(s, scanMediaType)
	if err != nil {
		return MediaType{}, errtrace.Wrap(err)
	}
	return val.(MediaType), nil //nolint:forcetypeassert
}

func (mt MediaType) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	fmt.Fprint(sb, mt.Type, "/", mt.Subtype)
	renderHdrParams(sb, mt.Params) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (mt MediaType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type hideMethods MediaType
		type MediaType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaType(mt))
		return
	}
}

// Charset returns the charset parameter without quotes.
func (mt MediaType) Charset() (string, bool) {
	v, ok := mt.Params.First("charset")
	if !ok {
		return "", false
	}
	return grammar.Unquote(v), true
}

// Equal compares this media type with another for equality.
// Types and subtypes compare case-insensitively; the charset parameter
// must agree when present in either side.
func (mt MediaType) Equal(val any) bool {
	var other MediaType
	switch v := val.(type) {
	case MediaType:
		other = v
	case *MediaType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(mt.Type, other.Type) &&
		util.EqFold(mt.Subtype, other.Subtype) &&
		compareHdrParams(mt.Params, other.Params, map[string]bool{"charset": true})
}

// IsValid checks whether the media type is syntactically valid.
func (mt MediaType) IsValid() bool {
	return grammar.IsToken(mt.Type) &&
		grammar.IsToken(mt.Subtype) &&
		validateHdrParams(mt.Params)
}

// IsZero reports whether the media type is empty.
func (mt MediaType) IsZero() bool {
	return mt.Type == "" && mt.Subtype == "" && len(mt.Params) == 0
}

// Clone returns a copy of the media type.
func (mt MediaType) Clone() Value {
	mt.Params = mt.Params.Clone()
	return mt
}

func scanMediaParts(s string, start int) (int, MediaType, [][2]string, error) {
	var mt MediaType
	tn := grammar.TokenLen(s, start)
	if tn == 0 {
		return 0, mt, nil, nil
	}
	i := start + tn
	if i >= len(s) || s[i] != '/' {
		return 0, mt, nil, nil
	}
	sn := grammar.TokenLen(s, i+1)
	if sn == 0 {
		return 0, mt, nil, nil
	}
	mt.Type, mt.Subtype = s[start:start+tn], s[i+1:i+1+sn]
	i += 1 + sn

	pn, pairs, err := scanParams(s, i)
	if err != nil {
		return 0, MediaType{}, nil, errtrace.Wrap(err)
	}
	return i + pn - start, mt, pairs, nil
}

func scanMediaType(s string, start int) (int, Value, error) {
	n, mt, pairs, err := scanMediaParts(s, start)
	if err != nil || n == 0 {
		return 0, nil, errtrace.Wrap(err)
	}
	mt.Params = paramsFromPairs(pairs)
	return n, mt, nil
}

// mediaTypeParser parses the single-valued Content-Type field.
type mediaTypeParser struct{}

func (mediaTypeParser) MultiValue() bool { return false }

func (mediaTypeParser) Separator() string { return ", " }

func (mediaTypeParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	val, err := parseOne(raw, scanMediaType)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []Value{val}, nil
}

// MediaRange is one element of an Accept field: a media type plus the
// accept parameters. The "q" parameter separates media parameters from
// accept parameters, so everything from "q" onwards lands in the outer
// Params. RFC 2616 Section 14.1.
type MediaRange struct {
	MediaType
	Params Values
}

func (rng MediaRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(rng.MediaType.String())
	renderHdrParams(sb, rng.Params) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (rng MediaRange) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, rng.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(rng.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, rng.String())
			return
		}

		type hideMethods MediaRange
		type MediaRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaRange(rng))
		return
	}
}

// Quality returns the quality factor from the accept parameters and
// whether one is present.
func (rng MediaRange) Quality() (float64, bool) {
	v, ok := rng.Params.First("q")
	if !ok {
		return 0, false
	}
	q, err := strconv.ParseFloat(v, 64)
	if err != nil || q < 0 || q > 1 {
		return 0, false
	}
	return q, true
}

// Equal compares this range with another for equality.
func (rng MediaRange) Equal(val any) bool {
	var other MediaRange
	switch v := val.(type) {
	case MediaRange:
		other = v
	case *MediaRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return rng.MediaType.Equal(other.MediaType) &&
		compareHdrParams(rng.Params, other.Params, map[string]bool{"q": true})
}

// IsValid checks whether the range is syntactically valid.
func (rng MediaRange) IsValid() bool {
	return rng.MediaType.IsValid() && validateHdrParams(rng.Params)
}

// IsZero reports whether the range is empty.
func (rng MediaRange) IsZero() bool {
	return rng.MediaType.IsZero() && len(rng.Params) == 0
}

// Clone returns a copy of the range.
func (rng MediaRange) Clone() Value {
	rng.MediaType = rng.MediaType.Clone().(MediaType) //nolint:forcetypeassert
	rng.Params = rng.Params.Clone()
	return rng
}

func scanMediaRange(s string, start int) (int, Value, error) {
	n, mt, pairs, err := scanMediaParts(s, start)
	if err != nil || n == 0 {
		return 0, nil, errtrace.Wrap(err)
	}

	// Media parameters before "q" belong to the media type; "q" and
	// everything after it are accept parameters.
	rng := MediaRange{MediaType: mt}
	accepting := false
	for _, kv := range pairs {
		if !accepting && strings.EqualFold(kv[0], "q") {
			accepting = true
		}
		if accepting {
			if rng.Params == nil {
				rng.Params = make(Values)
			}
			rng.Params.Append(kv[0], kv[1])
		} else {
			if rng.MediaType.Params == nil {
				rng.MediaType.Params = make(Values)
			}
			rng.MediaType.Params.Append(kv[0], kv[1])
		}
	}
	return n, rng, nil
}

// mediaRangeParser parses the multi-valued Accept field.
type mediaRangeParser struct{}

func (mediaRangeParser) MultiValue() bool { return true }

func (mediaRangeParser) Separator() string { return ", " }

func (mediaRangeParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	return errtrace.Wrap2(parseList(raw, scanMediaRange))
}
