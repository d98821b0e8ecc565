package document

import (
	"fmt"
	"strconv"
)

// Ref addresses one cell: 1-based column and row.
type Ref struct {
	Col int
	Row int
}

// ParseRef converts an A1-style reference like "B3" or "AA10" into a Ref.
func ParseRef(s string) (Ref, error) {
	col := 0
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			break
		}
		col = col*26 + int(c-'A') + 1
	}
	if col == 0 || i == len(s) {
		return Ref{}, fmt.Errorf("invalid cell reference %q", s)
	}
	row, err := strconv.Atoi(s[i:])
	if err != nil || row < 1 {
		return Ref{}, fmt.Errorf("invalid cell reference %q", s)
	}
	return Ref{Col: col, Row: row}, nil
}

// String renders the reference in A1 notation.
func (r Ref) String() string {
	return colName(r.Col) + strconv.Itoa(r.Row)
}

// Less orders references row-major, the order worksheet parts are written
// in.
func (r Ref) Less(other Ref) bool {
	if r.Row != other.Row {
		return r.Row < other.Row
	}
	return r.Col < other.Col
}

// colName converts a 1-based column number into its letter form: 1 is "A",
// 26 is "Z", 27 is "AA".
func colName(n int) string {
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}
