package header

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/ioutil"
	"github.com/ghettovoice/gohttphdr/internal/log"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// hdrEntry is the per-name state: raw field lines as received plus the
// parsed value cache. A successful lazy parse keeps the raw text for
// diagnostics; typed mutations drop it so the values become the single
// source of truth.
type hdrEntry struct {
	raw    []string
	vals   []Value
	parsed bool
}

func (ent *hdrEntry) clone() *hdrEntry {
	return &hdrEntry{
		raw:    slices.Clone(ent.raw),
		vals:   cloneValues(ent.vals),
		parsed: ent.parsed,
	}
}

// Store is an ordered, validating collection of header fields for one
// message role. Names are canonicalized on every operation, iteration and
// rendering follow first-insertion order. Raw field lines are parsed
// lazily on first typed access and the result is cached.
//
// A Store is not safe for concurrent use.
type Store struct {
	reg     *Registry
	entries map[Name]*hdrEntry
	order   []Name
	absent  map[Name]map[string]bool
	opts    *StoreOptions
}

// NewStore creates an empty store validating names against reg.
// A nil reg accepts any name and surfaces unknown values as [Text].
func NewStore(reg *Registry, opts *StoreOptions) *Store {
	return &Store{
		reg:     reg,
		entries: map[Name]*hdrEntry{},
		opts:    opts,
	}
}

func (hdrs *Store) log() *slog.Logger { return hdrs.opts.log() }

func (hdrs *Store) parserFor(name Name) Parser {
	if p := hdrs.reg.Parser(name); p != nil {
		return p
	}
	return extParser{}
}

func (hdrs *Store) checkName(name Name) error {
	if !name.IsValid() {
		return errtrace.Wrap(NewInvalidArgumentError("header name %q", name))
	}
	if hdrs.reg.Forbids(name) {
		hdrs.log().Debug("reject header name", "name", name)
		return errtrace.Wrap(NewInvalidNameError("%q", name))
	}
	return nil
}

func (hdrs *Store) ensureEntry(name Name) *hdrEntry {
	ent := hdrs.entries[name]
	if ent == nil {
		ent = &hdrEntry{}
		hdrs.entries[name] = ent
		hdrs.order = append(hdrs.order, name)
	}
	return ent
}

// Values returns the parsed values of the header, parsing raw field lines
// on first access. A successful parse is cached with the raw text kept
// alongside. A failed parse keeps the raw text untouched, so a later
// SetValue can repair the entry, and reports a syntax error naming the
// header. Nil with no error means the header is absent.
func (hdrs *Store) Values(name Name) ([]Value, error) {
	name = CanonicName(name)
	ent := hdrs.entries[name]
	if ent == nil {
		return nil, nil
	}
	if !ent.parsed {
		p := hdrs.parserFor(name)
		var vals []Value
		for _, raw := range ent.raw {
			lineVals, err := p.ParseValue(raw, vals)
			if err != nil {
				hdrs.log().Debug("parse header failed", "name", name, "raw", log.StringValue(raw), "error", err)
				return nil, errtrace.Wrap(fmt.Errorf("%s: %w", name, err))
			}
			vals = append(vals, lineVals...)
		}
		ent.vals = vals
		ent.parsed = true
		hdrs.log().Debug("parse header", "name", name, "num", len(vals),
			"values", log.CalcValue(func() any { return renderValuesString(vals, p.Separator()) }))
	}
	return cloneValues(ent.vals), nil
}

// SetValue replaces the header with the single value val, discarding any
// raw text. A nil val removes the header.
func (hdrs *Store) SetValue(name Name, val Value) error {
	name = CanonicName(name)
	if val == nil {
		hdrs.Remove(name)
		return nil
	}
	if err := hdrs.checkName(name); err != nil {
		return errtrace.Wrap(err)
	}
	if !val.IsValid() {
		return errtrace.Wrap(NewSyntaxError("%s: %q", name, val))
	}
	ent := hdrs.ensureEntry(name)
	ent.raw = nil
	ent.vals = []Value{val.Clone()}
	ent.parsed = true
	return nil
}

// AddValue appends one value. Single-valued headers reject a second value
// with [ErrSingleValue]. Unparsed raw lines are parsed first so the value
// lands behind the existing ones; the raw text is dropped afterwards.
func (hdrs *Store) AddValue(name Name, val Value) error {
	name = CanonicName(name)
	if val == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil value for %q", name))
	}
	if err := hdrs.checkName(name); err != nil {
		return errtrace.Wrap(err)
	}
	if !val.IsValid() {
		return errtrace.Wrap(NewSyntaxError("%s: %q", name, val))
	}
	vals, err := hdrs.Values(name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if len(vals) > 0 && !hdrs.parserFor(name).MultiValue() {
		return errtrace.Wrap(NewSingleValueError("%q", name))
	}
	ent := hdrs.ensureEntry(name)
	ent.raw = nil
	ent.vals = append(ent.vals, val.Clone())
	ent.parsed = true
	return nil
}

// AddRaw ingests one raw field line without parsing it. Multi-valued
// headers accumulate lines, single-valued headers replace. Names
// belonging to another role are rejected with [ErrInvalidName].
func (hdrs *Store) AddRaw(name Name, raw string) error {
	name = CanonicName(name)
	if err := hdrs.checkName(name); err != nil {
		return errtrace.Wrap(err)
	}
	p := hdrs.parserFor(name)
	ent := hdrs.ensureEntry(name)
	if !p.MultiValue() {
		ent.raw = []string{raw}
		ent.vals = nil
		ent.parsed = false
		return nil
	}
	if ent.parsed && ent.raw == nil && len(ent.vals) > 0 {
		// The values came from typed setters. Render them into a line so
		// the re-parse after this append sees everything.
		ent.raw = []string{renderValuesString(ent.vals, p.Separator())}
	}
	ent.raw = append(ent.raw, raw)
	ent.vals = nil
	ent.parsed = false
	return nil
}

// Raw returns the raw field lines of the header: the lines as received,
// or one rendered line when the values were set through typed accessors.
// Nil means the header is absent.
func (hdrs *Store) Raw(name Name) []string {
	name = CanonicName(name)
	ent := hdrs.entries[name]
	if ent == nil {
		return nil
	}
	if ent.raw != nil {
		return slices.Clone(ent.raw)
	}
	if len(ent.vals) == 0 {
		return nil
	}
	return []string{renderValuesString(ent.vals, hdrs.parserFor(name).Separator())}
}

// Has checks whether the header is present.
func (hdrs *Store) Has(name Name) bool {
	_, ok := hdrs.entries[CanonicName(name)]
	return ok
}

// Names returns the header names in first-insertion order.
func (hdrs *Store) Names() []Name { return slices.Clone(hdrs.order) }

// Len returns the number of distinct header names.
func (hdrs *Store) Len() int { return len(hdrs.entries) }

// Remove deletes the header. It returns false when the header is absent.
func (hdrs *Store) Remove(name Name) bool {
	name = CanonicName(name)
	if _, ok := hdrs.entries[name]; !ok {
		return false
	}
	delete(hdrs.entries, name)
	hdrs.order = slices.DeleteFunc(hdrs.order, func(n Name) bool { return n == name })
	return true
}

// RemoveValue removes the first value equal to val, parsing raw field
// lines first. It returns false when the header is absent, fails to parse
// or holds no equal value. Removing the last value removes the header.
func (hdrs *Store) RemoveValue(name Name, val Value) bool {
	name = CanonicName(name)
	vals, err := hdrs.Values(name)
	if err != nil || len(vals) == 0 {
		return false
	}
	i := slices.IndexFunc(vals, func(v Value) bool { return v.Equal(val) })
	if i < 0 {
		return false
	}
	ent := hdrs.entries[name]
	ent.vals = slices.Delete(ent.vals, i, i+1)
	ent.raw = nil
	if len(ent.vals) == 0 {
		hdrs.Remove(name)
	}
	return true
}

// AddFrom copies headers absent in this store from src, raw or parsed,
// whichever src holds. Existing headers are never overwritten. Names this
// store's registry forbids are skipped. Special value flags are merged on
// top of this by the role types.
func (hdrs *Store) AddFrom(src *Store) {
	if src == nil {
		return
	}
	for _, name := range src.order {
		if _, ok := hdrs.entries[name]; ok {
			continue
		}
		if hdrs.reg.Forbids(name) {
			hdrs.log().Debug("skip merge of forbidden header", "name", name)
			continue
		}
		ent := src.entries[name].clone()
		hdrs.entries[name] = ent
		hdrs.order = append(hdrs.order, name)
		hdrs.log().Debug("merge header", "name", name, "entry", log.FmtValue(ent, false))
	}
}

// Clear removes all headers and special value records.
func (hdrs *Store) Clear() {
	clear(hdrs.entries)
	hdrs.order = hdrs.order[:0]
	clear(hdrs.absent)
}

// Clone returns a deep copy of the store sharing the registry and options.
func (hdrs *Store) Clone() *Store {
	hdrs2 := NewStore(hdrs.reg, hdrs.opts)
	hdrs2.order = slices.Clone(hdrs.order)
	for name, ent := range hdrs.entries {
		hdrs2.entries[name] = ent.clone()
	}
	for name, m := range hdrs.absent {
		if hdrs2.absent == nil {
			hdrs2.absent = make(map[Name]map[string]bool, len(hdrs.absent))
		}
		hdrs2.absent[name] = maps.Clone(m)
	}
	return hdrs2
}

// specialFlag reports the tri-state of a distinguished value. Presence
// wins: a parsed cache is searched by equality, unparsed raw lines are
// scanned for the token without parsing them. With no occurrence the
// explicit-absent record decides between TernaryFalse and TernaryUnknown.
func (hdrs *Store) specialFlag(name Name, spec Value) Ternary {
	name = CanonicName(name)
	if ent := hdrs.entries[name]; ent != nil {
		if ent.parsed {
			if slices.ContainsFunc(ent.vals, func(v Value) bool { return v.Equal(spec) }) {
				return TernaryTrue
			}
		} else {
			for _, raw := range ent.raw {
				if containsToken(raw, spec.String()) {
					return TernaryTrue
				}
			}
		}
	}
	if hdrs.absent[name][util.LCase(spec.String())] {
		return TernaryFalse
	}
	return TernaryUnknown
}

// setSpecialFlag moves the tri-state of a distinguished value:
// TernaryTrue adds the value and clears any explicit-absent record,
// TernaryFalse removes the value and records the absence, TernaryUnknown
// removes both the value and the record.
func (hdrs *Store) setSpecialFlag(name Name, spec Value, flag Ternary) error {
	name = CanonicName(name)
	key := util.LCase(spec.String())
	switch flag {
	case TernaryTrue:
		if m := hdrs.absent[name]; m != nil {
			delete(m, key)
		}
		if hdrs.specialFlag(name, spec) != TernaryTrue {
			return errtrace.Wrap(hdrs.AddValue(name, spec))
		}
	case TernaryFalse:
		if !hdrs.RemoveValue(name, spec) {
			if _, err := hdrs.Values(name); err != nil {
				return errtrace.Wrap(err)
			}
		}
		if hdrs.absent == nil {
			hdrs.absent = map[Name]map[string]bool{}
		}
		m := hdrs.absent[name]
		if m == nil {
			m = map[string]bool{}
			hdrs.absent[name] = m
		}
		m[key] = true
	default:
		if m := hdrs.absent[name]; m != nil {
			delete(m, key)
		}
		hdrs.RemoveValue(name, spec)
	}
	hdrs.log().Debug("set special header value", "name", name, "value", key, "flag", flag)
	return nil
}

// RenderTo writes all headers to w, one "Name: values" line per name in
// first-insertion order, each line terminated with CRLF. Parsed values
// are preferred over raw text, so canonical forms win once a header has
// been parsed or set.
func (hdrs *Store) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, name := range hdrs.order {
		ent := hdrs.entries[name]
		sep := hdrs.parserFor(name).Separator()
		cw.Fprint(name, ": ")
		if ent.parsed {
			cw.Call(func(w io.Writer) (int, error) {
				return errtrace.Wrap2(renderValues(w, ent.vals, sep))
			})
		} else {
			for i, raw := range ent.raw {
				if i > 0 {
					cw.Fprint(sep)
				}
				cw.WriteString(util.TrimSP(raw))
			}
		}
		cw.Fprint("\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the rendered headers as a string.
func (hdrs *Store) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdrs.RenderTo(sb)
	return sb.String()
}

func (hdrs *Store) String() string { return hdrs.Render() }

// MarshalJSON encodes the headers as an object of name to an array of
// rendered value strings, in first-insertion order. Parsed entries render
// one string per value, unparsed entries keep one string per raw line.
func (hdrs *Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range hdrs.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(string(name))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		buf.Write(b)
		buf.WriteByte(':')

		ent := hdrs.entries[name]
		var strs []string
		if ent.parsed {
			strs = make([]string, len(ent.vals))
			for j, v := range ent.vals {
				strs[j] = v.String()
			}
		} else {
			strs = make([]string, len(ent.raw))
			for j, raw := range ent.raw {
				strs[j] = util.TrimSP(raw)
			}
		}
		b, err = json.Marshal(strs)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the store content with the decoded object,
// ingesting every string as one raw field line in object order. The store
// is left untouched when decoding fails.
func (hdrs *Store) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errtrace.Wrap(NewInvalidArgumentError("not a JSON object"))
	}

	hdrs2 := NewStore(hdrs.reg, hdrs.opts)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errtrace.Wrap(err)
		}
		name, ok := tok.(string)
		if !ok {
			return errtrace.Wrap(NewInvalidArgumentError("not a JSON object key: %v", tok))
		}
		var lines []string
		if err := dec.Decode(&lines); err != nil {
			return errtrace.Wrap(err)
		}
		for _, raw := range lines {
			if err := hdrs2.AddRaw(Name(name), raw); err != nil {
				return errtrace.Wrap(err)
			}
		}
	}
	if _, err := dec.Token(); err != nil {
		return errtrace.Wrap(err)
	}
	*hdrs = *hdrs2
	return nil
}

// containsToken reports whether the comma-separated raw line holds an
// element equal to token, compared case-insensitively. The line is never
// parsed, only split.
func containsToken(raw, token string) bool {
	for _, elem := range strings.Split(raw, ",") {
		if util.EqFold(util.TrimSP(elem), token) {
			return true
		}
	}
	return false
}

func renderValuesString(vals []Value, sep string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderValues(sb, vals, sep)
	return sb.String()
}
