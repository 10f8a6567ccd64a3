package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// Product holds software information as found in User-Agent, Server and
// Upgrade: a product token with an optional version and, in the fields that
// allow them, an optional trailing comment. A standalone comment is kept as
// a Product with an empty Name. Comment stores the content without the
// surrounding parentheses; several comments after one product are joined
// with "; ".
type Product struct {
	Name    string
	Version string
	Comment string
}

func (p Product) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if p.Name != "" {
		sb.WriteString(p.Name)
		if p.Version != "" {
			fmt.Fprint(sb, "/", p.Version)
		}
	}
	if p.Comment != "" {
		if p.Name != "" {
			sb.WriteByte(' ')
		}
		fmt.Fprint(sb, "(", p.Comment, ")")
	}
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (p Product) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, p.String())
			return
		}

		type hideMethods Product
		type Product hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Product(p))
		return
	}
}

// Equal compares this product with another for equality.
// Names and versions compare case-insensitively, comments byte-exact.
func (p Product) Equal(val any) bool {
	var other Product
	switch v := val.(type) {
	case Product:
		other = v
	case *Product:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(p.Name, other.Name) &&
		util.EqFold(p.Version, other.Version) &&
		p.Comment == other.Comment
}

// IsValid checks whether the product is syntactically valid: a product
// token with an optional version, or a standalone comment with balanced
// parentheses.
func (p Product) IsValid() bool {
	if p.Name == "" {
		if p.Version != "" || p.Comment == "" {
			return false
		}
	} else if !grammar.IsToken(p.Name) {
		return false
	}
	if p.Version != "" && !grammar.IsToken(p.Version) {
		return false
	}
	if p.Comment != "" {
		wrapped := "(" + p.Comment + ")"
		n, err := grammar.CommentLen(wrapped, 0)
		return err == nil && n == len(wrapped)
	}
	return true
}

// IsZero reports whether the product is empty.
func (p Product) IsZero() bool { return p.Name == "" && p.Version == "" && p.Comment == "" }

// Clone returns a copy of the product.
func (p Product) Clone() Value { return p }

func scanProduct(s string, start int) (int, Value, error) {
	n := grammar.TokenLen(s, start)
	if n == 0 {
		return 0, nil, nil
	}
	p := Product{Name: s[start : start+n]}
	i := start + n
	if i < len(s) && s[i] == '/' {
		vn := grammar.TokenLen(s, i+1)
		if vn == 0 {
			return 0, nil, nil
		}
		p.Version = s[i+1 : i+1+vn]
		i += 1 + vn
	}
	return i - start, p, nil
}

// productParser parses product lists. Upgrade carries a comma-separated
// list of bare products; User-Agent and Server carry a whitespace-separated
// sequence of products and comments, with comments attached to the product
// they follow.
type productParser struct {
	comments bool
}

func (productParser) MultiValue() bool { return true }

func (p productParser) Separator() string {
	if p.comments {
		return " "
	}
	return ", "
}

func (p productParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	if !p.comments {
		return errtrace.Wrap2(parseList(raw, scanProduct))
	}

	var vals []Value
	i := grammar.WhitespaceLen(raw, 0)
	for i < len(raw) {
		if raw[i] == '(' {
			n, err := grammar.CommentLen(raw, i)
			if err != nil {
				return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
			}
			comment := raw[i+1 : i+n-1]
			if last, ok := lastProduct(vals); ok && last.Name != "" {
				if last.Comment == "" {
					last.Comment = comment
				} else {
					last.Comment += "; " + comment
				}
				vals[len(vals)-1] = last
			} else {
				vals = append(vals, Product{Comment: comment})
			}
			i += n
		} else {
			n, val, _ := scanProduct(raw, i)
			if n == 0 {
				return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
			}
			vals = append(vals, val)
			i += n
		}
		i += grammar.WhitespaceLen(raw, i)
	}
	if len(vals) == 0 {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	return vals, nil
}

func lastProduct(vals []Value) (Product, bool) {
	if len(vals) == 0 {
		return Product{}, false
	}
	p, ok := vals[len(vals)-1].(Product)
	return p, ok
}
