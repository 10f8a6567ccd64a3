package header

//go:generate go tool errtrace -w .

import (
	"io"
	"net/textproto"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/ioutil"
	"github.com/ghettovoice/gohttphdr/internal/types"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// Values represents header or value parameters as a multi-value map.
type Values = types.Values

// Name represents an HTTP header field name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

var hdrNames = map[string]Name{
	"Content-Md5":      "Content-MD5",
	"Etag":             "ETag",
	"Te":               "TE",
	"Www-Authenticate": "WWW-Authenticate",
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen
// to upper case; the rest are converted to lowercase. For example, the canonical
// name for "accept-encoding" is "Accept-Encoding". Names whose canonical form is
// not the MIME capitalization, such as "ETag" or "WWW-Authenticate", are mapped
// through an exception table.
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}

	name = T(textproto.CanonicalMIMEHeaderKey(string(name)))
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}
	return Name(name)
}

func renderValues(w io.Writer, vals []Value, sep string) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range vals {
		if i > 0 {
			cw.Fprint(sep)
		}
		cw.WriteString(vals[i].String())
	}
	return errtrace.Wrap2(cw.Result())
}

func renderHdrParams(w io.Writer, params Values) (num int, err error) {
	if len(params) == 0 {
		return 0, nil
	}

	// Sort parameters in alphabet order, but with "q" parameter always the first place.
	// RFC 2616 Section 14.1.
	kvs := make([][]string, 0, len(params))
	for k := range params {
		v, _ := params.Last(k)
		kvs = append(kvs, []string{util.LCase(k), v})
	}
	slices.SortFunc(kvs, func(a, b []string) int {
		if a[0] == "q" && b[0] != "q" {
			return -1
		} else if a[0] != "q" && b[0] == "q" {
			return 1
		}
		return util.CmpKVs(a, b)
	})

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, kv := range kvs {
		cw.Fprint("; ", kv[0])
		if kv[1] != "" {
			cw.Fprint("=", kv[1])
		}
	}
	return errtrace.Wrap2(cw.Result())
}

func compareHdrParams(params1, params2 Values, specParams map[string]bool) bool {
	switch {
	case len(params1) == 0 && len(params2) == 0:
		return true
	case len(params1) == 0:
		return !hasSpecHdrParam(params2, specParams)
	case len(params2) == 0:
		return !hasSpecHdrParam(params1, specParams)
	}

	checked := map[string]bool{}
	// Any non-special parameters appearing in only one list are ignored.
	// First, traverse over self-parameters, compare values appearing in both lists,
	// check on speciality and save checked param names.
	for k := range params1 {
		if params2.Has(k) {
			// Any parameter appearing in both values must match.
			// Unquoted values compare case-insensitive, quoted values byte-exact.
			v1, _ := params1.Last(k)
			v2, _ := params2.Last(k)
			if !grammar.IsQuoted(v1) {
				v1 = util.LCase(v1)
			}
			if !grammar.IsQuoted(v2) {
				v2 = util.LCase(v2)
			}
			if v1 != v2 {
				return false
			}
		} else if specParams[util.LCase(k)] {
			// Any special parameter appearing in one value must appear in the other.
			return false
		}
		checked[util.LCase(k)] = true
	}
	// Then need only check that there are no non-checked special parameters in the other list.
	for k := range specParams {
		if checked[k] {
			continue
		}
		if params2.Has(k) {
			return false
		}
	}
	return true
}

func hasSpecHdrParam(params Values, specParams map[string]bool) bool {
	for k := range specParams {
		if params.Has(k) {
			return true
		}
	}
	return false
}

func validateHdrParams(params Values) bool {
	for k := range params {
		if !grammar.IsToken(k) {
			return false
		}
		v, _ := params.Last(k)
		if v != "" && !(grammar.IsToken(v) || grammar.IsQuoted(v)) {
			return false
		}
	}
	return true
}

// getSingle reads the value of a single-valued header from the store,
// nil when the header is absent.
func getSingle[T Value](hdrs *Store, name Name) (*T, error) {
	vals, err := hdrs.Values(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(vals) == 0 {
		return nil, nil
	}
	v, ok := vals[0].(T)
	if !ok {
		return nil, errtrace.Wrap(NewInvalidArgumentError("unexpected %T value in %q", vals[0], name))
	}
	return &v, nil
}

// setSingle writes the value of a single-valued header, removing the
// header when val is nil.
func setSingle[T Value](hdrs *Store, name Name, val *T) error {
	if val == nil {
		hdrs.Remove(name)
		return nil
	}
	return errtrace.Wrap(hdrs.SetValue(name, *val))
}

func cloneValues(vals []Value) []Value {
	if vals == nil {
		return nil
	}
	vals2 := make([]Value, len(vals))
	for i := range vals {
		vals2[i] = vals[i].Clone()
	}
	return vals2
}

func equalValues(vals1, vals2 []Value) bool {
	return slices.EqualFunc(vals1, vals2, func(v1, v2 Value) bool { return v1.Equal(v2) })
}
