package plate

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  ab cd!!", "AB-CD"},
		{"ab 123 xy", "AB-123-XY"},
		{"AA-229-BM", "AA-229-BM"},
		{"  aa 229 bm  ", "AA-229-BM"},
		{"a\tb\nc", "A-B-C"},
		{"éà!?", ""},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		got := Normalize(tc.in)
		if got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  ab cd!!", "ab 123 xy", "AA-229-BM", "", "a  b   c", "plate#42"}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
