package document

import "testing"

func TestParseRef(t *testing.T) {
	tests := []struct {
		in   string
		want Ref
	}{
		{"A1", Ref{1, 1}},
		{"B3", Ref{2, 3}},
		{"Z99", Ref{26, 99}},
		{"AA1", Ref{27, 1}},
		{"AZ10", Ref{52, 10}},
		{"BA2", Ref{53, 2}},
		{"ZZ1", Ref{702, 1}},
		{"AAA1", Ref{703, 1}},
		{"XFD1048576", Ref{16384, 1048576}},
	}
	for _, tt := range tests {
		got, err := ParseRef(tt.in)
		if err != nil {
			t.Errorf("ParseRef(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRef(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("Ref%+v.String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}

func TestParseRefInvalid(t *testing.T) {
	for _, in := range []string{"", "A", "1", "A0", "1A", "a1", "A-1", "A1B", "$A$1"} {
		if _, err := ParseRef(in); err == nil {
			t.Errorf("ParseRef(%q) expected error", in)
		}
	}
}

func TestRefOrdering(t *testing.T) {
	ordered := []Ref{{1, 1}, {2, 1}, {27, 1}, {1, 2}, {5, 2}, {1, 10}}
	for i := 1; i < len(ordered); i++ {
		if !ordered[i-1].Less(ordered[i]) {
			t.Errorf("%v should sort before %v", ordered[i-1], ordered[i])
		}
		if ordered[i].Less(ordered[i-1]) {
			t.Errorf("%v should not sort before %v", ordered[i], ordered[i-1])
		}
	}
}
