package styles

// NumberFormat is a structured description of a cell number format. Kind
// selects which of the remaining fields are meaningful; the zero value is
// General. Definitions failing validation (see valid) are treated as General
// everywhere, silently.
type NumberFormat struct {
	Kind      NumberFormatKind
	Decimals  int    // 0..30; Number, Currency, Percentage, Scientific
	Thousands bool   // Number, Currency
	Symbol    string // Currency glyph, e.g. "$"
	Pattern   string // Date/Time/DateTime pattern; empty means the default
	Code      string // Custom format code, verbatim
}

// Default date/time patterns used when a Date/Time/DateTime definition does
// not carry one.
const (
	DefaultDatePattern = "yyyy-mm-dd"
	DefaultTimePattern = "hh:mm:ss"
)

const maxDecimals = 30

// valid reports whether the definition passes validation: decimal places in
// [0,30] and a non-empty code for Custom.
func (nf NumberFormat) valid() bool {
	if nf.Decimals < 0 || nf.Decimals > maxDecimals {
		return false
	}
	if nf.Kind == NumberFormatKindCustom && nf.Code == "" {
		return false
	}
	return true
}

// customFormatBase is the first id available for custom formats; everything
// below is reserved for the built-in table.
const customFormatBase = 164

// builtinFormats is the fixed table of built-in format codes with reserved
// ids. Matching is by exact code string.
var builtinFormats = map[string]uint32{
	"General":  0,
	"0":        1,
	"0.00":     2,
	"#,##0":    3,
	"#,##0.00": 4,
	"0%":       9,
	"0.00%":    10,
	"0.00E+00": 11,
	"# ?/?":    12,
	"# ??/??":  13,

	"yyyy-mm-dd":    14,
	"d-mmm-yy":      15,
	"d-mmm":         16,
	"mmm-yy":        17,
	"h:mm AM/PM":    18,
	"h:mm:ss AM/PM": 19,
	"h:mm":          20,
	"hh:mm:ss":      21,
	"m/d/yy h:mm":   22,

	"#,##0 ;(#,##0)":           37,
	"#,##0 ;[Red](#,##0)":      38,
	"#,##0.00;(#,##0.00)":      39,
	"#,##0.00;[Red](#,##0.00)": 40,

	"mm:ss":     45,
	"[h]:mm:ss": 46,
	"mmss.0":    47,
	"##0.0E+0":  48,
	"@":         49,
}

// builtinFormatCodes is the id -> code inverse of builtinFormats.
var builtinFormatCodes = make(map[uint32]string, len(builtinFormats))

func init() {
	for code, id := range builtinFormats {
		builtinFormatCodes[id] = code
	}
}

// NumberFormatRegistry maps structured number formats to the integer format
// ids referenced by XF records, and back. Ids 0-163 are reserved for the
// built-in table; custom codes are allocated monotonically from 164.
type NumberFormatRegistry struct {
	custom map[string]uint32 // code -> id, custom formats only
	codes  map[uint32]string // id -> code, custom formats only
	order  []uint32          // custom ids in allocation order
	next   uint32
}

func newNumberFormatRegistry() *NumberFormatRegistry {
	return &NumberFormatRegistry{
		custom: make(map[string]uint32),
		codes:  make(map[uint32]string),
		next:   customFormatBase,
	}
}

// Register returns the format id for def. General and definitions failing
// validation return 0. A definition whose canonical code matches the
// built-in table returns the table id; anything else is allocated (or found)
// in the custom range.
func (r *NumberFormatRegistry) Register(def NumberFormat) uint32 {
	if !def.valid() || def.Kind == NumberFormatKindGeneral {
		return 0
	}
	code := def.FormatCode()
	if id, ok := builtinFormats[code]; ok {
		return id
	}
	if id, ok := r.custom[code]; ok {
		return id
	}
	id := r.next
	r.next++
	r.custom[code] = id
	r.codes[id] = code
	r.order = append(r.order, id)
	return id
}

// Definition reconstructs a structured definition from a format id: 0 is
// General, built-in ids resolve through the fixed table and custom ids
// through the registered code, both classified by ParseFormatCode. Unknown
// ids degrade to General.
func (r *NumberFormatRegistry) Definition(id uint32) NumberFormat {
	if id == 0 {
		return NumberFormat{}
	}
	if code, ok := builtinFormatCodes[id]; ok {
		return ParseFormatCode(code)
	}
	if code, ok := r.codes[id]; ok {
		return ParseFormatCode(code)
	}
	return NumberFormat{}
}

// Custom returns the custom (id, code) pairs in allocation order, for the
// numFmts section of the styleSheet part.
func (r *NumberFormatRegistry) Custom() []CustomFormat {
	out := make([]CustomFormat, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, CustomFormat{ID: id, Code: r.codes[id]})
	}
	return out
}

// CustomFormat is one explicitly written number format entry.
type CustomFormat struct {
	ID   uint32
	Code string
}

// loadCustom inserts a custom format read from a package, keeping the next
// allocation id past every loaded id. Ids below the custom range and empty
// codes are ignored.
func (r *NumberFormatRegistry) loadCustom(id uint32, code string) {
	if id < customFormatBase || code == "" {
		return
	}
	if _, ok := r.codes[id]; ok {
		return
	}
	r.custom[code] = id
	r.codes[id] = code
	r.order = append(r.order, id)
	if id >= r.next {
		r.next = id + 1
	}
}

// reset drops all custom formats. Called when a style sheet is rebuilt from
// a parsed package.
func (r *NumberFormatRegistry) reset() {
	clear(r.custom)
	clear(r.codes)
	r.order = r.order[:0]
	r.next = customFormatBase
}
