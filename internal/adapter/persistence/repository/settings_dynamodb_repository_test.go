package repository

import "testing"

func TestTaxIDRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		ruc  string
		dv   string
		want string
	}{
		{name: "plain ruc", ruc: "155612345", dv: "86", want: "155612345-86"},
		{name: "ruc with dashes", ruc: "8-123-456", dv: "25", want: "8-123-456-25"},
		{name: "empty dv", ruc: "155612345", dv: "", want: "155612345-"},
		{name: "both empty", ruc: "", dv: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			combined := combineTaxID(tc.ruc, tc.dv)
			if combined != tc.want {
				t.Fatalf("combineTaxID(%q, %q) = %q, want %q", tc.ruc, tc.dv, combined, tc.want)
			}
			ruc, dv := splitTaxID(combined)
			if ruc != tc.ruc || dv != tc.dv {
				t.Fatalf("splitTaxID(%q) = (%q, %q), want (%q, %q)", combined, ruc, dv, tc.ruc, tc.dv)
			}
		})
	}
}

func TestSplitTaxIDWithoutSeparator(t *testing.T) {
	ruc, dv := splitTaxID("155612345")
	if ruc != "155612345" || dv != "" {
		t.Fatalf("splitTaxID = (%q, %q), want (%q, %q)", ruc, dv, "155612345", "")
	}
}
