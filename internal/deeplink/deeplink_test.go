package deeplink

import "testing"

func TestParse_QueryStringForms(t *testing.T) {
	cases := []struct {
		raw  string
		want Seed
	}{
		{"", Seed{}},
		{"?search=ali&company=Acme", Seed{Search: "ali", Company: "Acme"}},
		{"search=ali&company=Acme", Seed{Search: "ali", Company: "Acme"}},
		{"https://example.com/people?search=ali&company=Acme", Seed{Search: "ali", Company: "Acme"}},
		{"?company=Acme", Seed{Company: "Acme"}},
		{"?search=rose", Seed{Search: "rose"}},
		{"?search=a%20b", Seed{Search: "a b"}},
	}

	for _, tc := range cases {
		got, err := Parse(tc.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestParse_InvalidQueryString(t *testing.T) {
	if _, err := Parse("?search=%zz"); err == nil {
		t.Fatalf("Parse accepted invalid escape, want error")
	}
}
