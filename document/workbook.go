// Package document implements the workbook object graph and the zipped
// multi-part XML package codec built around the styles engine. A Workbook
// owns its sheets, a shared-string pool and a styles.StyleSheet; Write and
// OpenFile move the whole graph to and from the package format.
package document

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"sxl/styles"
)

// ValueKind discriminates what a cell holds.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueString
	ValueNumber
	ValueBool
)

// Cell is a single worksheet cell. The zero value is an empty, unstyled
// cell.
type Cell struct {
	kind     ValueKind
	str      string
	num      float64
	boolean  bool
	style    uint32
	hasStyle bool
}

// Kind reports what the cell holds.
func (c *Cell) Kind() ValueKind { return c.kind }

// String returns the string value; empty for non-string cells.
func (c *Cell) String() string { return c.str }

// Number returns the numeric value; zero for non-number cells.
func (c *Cell) Number() float64 { return c.num }

// Bool returns the boolean value; false for non-bool cells.
func (c *Cell) Bool() bool { return c.boolean }

// StyleIndex returns the cell format index and whether one was assigned.
func (c *Cell) StyleIndex() (uint32, bool) { return c.style, c.hasStyle }

// Sheet is one worksheet: a sparse grid of cells keyed by reference.
type Sheet struct {
	name  string
	cells map[Ref]*Cell
	wb    *Workbook
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

func (s *Sheet) cell(ref string) (*Cell, error) {
	r, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}
	c, ok := s.cells[r]
	if !ok {
		c = &Cell{}
		s.cells[r] = c
	}
	return c, nil
}

// SetString stores a string value, interning it in the workbook's
// shared-string pool at write time.
func (s *Sheet) SetString(ref, value string) error {
	c, err := s.cell(ref)
	if err != nil {
		return err
	}
	c.kind, c.str, c.num, c.boolean = ValueString, value, 0, false
	return nil
}

// SetNumber stores a numeric value.
func (s *Sheet) SetNumber(ref string, value float64) error {
	c, err := s.cell(ref)
	if err != nil {
		return err
	}
	c.kind, c.str, c.num, c.boolean = ValueNumber, "", value, false
	return nil
}

// SetBool stores a boolean value.
func (s *Sheet) SetBool(ref string, value bool) error {
	c, err := s.cell(ref)
	if err != nil {
		return err
	}
	c.kind, c.str, c.num, c.boolean = ValueBool, "", 0, value
	return nil
}

// SetStyle canonicalizes style through the workbook's style sheet and
// assigns the resulting cell format index. The index is returned so callers
// can reuse it directly via SetStyleIndex.
func (s *Sheet) SetStyle(ref string, style styles.Style) (uint32, error) {
	c, err := s.cell(ref)
	if err != nil {
		return 0, err
	}
	idx := s.wb.styles.RegisterCellFormat(style)
	c.style, c.hasStyle = idx, true
	return idx, nil
}

// SetStyleIndex assigns an already-registered cell format index.
func (s *Sheet) SetStyleIndex(ref string, index uint32) error {
	c, err := s.cell(ref)
	if err != nil {
		return err
	}
	c.style, c.hasStyle = index, true
	return nil
}

// Cell returns the cell at ref, or nil when the cell was never touched.
func (s *Sheet) Cell(ref string) (*Cell, error) {
	r, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}
	return s.cells[r], nil
}

// Refs returns the references of all touched cells in row-major order.
func (s *Sheet) Refs() []Ref {
	refs := make([]Ref, 0, len(s.cells))
	for r := range s.cells {
		refs = append(refs, r)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
	return refs
}

// Workbook is the root of the document graph.
type Workbook struct {
	sheets []*Sheet
	styles *styles.StyleSheet
	shared *sharedStrings
	log    *zap.Logger
}

// NewWorkbook creates an empty workbook. Pass nil to disable logging.
func NewWorkbook(log *zap.Logger) *Workbook {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("document")
	return &Workbook{
		styles: styles.NewStyleSheet(log),
		shared: newSharedStrings(),
		log:    log,
	}
}

// Styles exposes the workbook's style sheet for direct registration.
func (wb *Workbook) Styles() *styles.StyleSheet { return wb.styles }

// AddSheet appends a new worksheet. Sheet names must be unique within the
// workbook.
func (wb *Workbook) AddSheet(name string) (*Sheet, error) {
	if name == "" {
		return nil, fmt.Errorf("empty sheet name")
	}
	for _, s := range wb.sheets {
		if s.name == name {
			return nil, fmt.Errorf("duplicate sheet name %q", name)
		}
	}
	s := &Sheet{name: name, cells: make(map[Ref]*Cell), wb: wb}
	wb.sheets = append(wb.sheets, s)
	wb.log.Debug("Added sheet", zap.String("name", name))
	return s, nil
}

// Sheets returns the worksheets in workbook order.
func (wb *Workbook) Sheets() []*Sheet { return wb.sheets }

// Sheet returns the worksheet with the given name, or nil.
func (wb *Workbook) Sheet(name string) *Sheet {
	for _, s := range wb.sheets {
		if s.name == name {
			return s
		}
	}
	return nil
}

// StyleAt resolves a cell format index back into a full Style.
func (wb *Workbook) StyleAt(index uint32) styles.Style {
	return wb.styles.ResolveStyle(index)
}

// sharedStrings interns cell strings so each distinct value is stored once
// in the package.
type sharedStrings struct {
	items []string
	index map[string]int
}

func newSharedStrings() *sharedStrings {
	return &sharedStrings{index: make(map[string]int)}
}

func (p *sharedStrings) add(v string) int {
	if i, ok := p.index[v]; ok {
		return i
	}
	i := len(p.items)
	p.items = append(p.items, v)
	p.index[v] = i
	return i
}

func (p *sharedStrings) at(i int) (string, bool) {
	if i < 0 || i >= len(p.items) {
		return "", false
	}
	return p.items[i], true
}

func (p *sharedStrings) reset() {
	p.items = p.items[:0]
	clear(p.index)
}
