package zipcode

import "testing"

func TestIsValid(t *testing.T) {
	valid := []string{"63101", "63110", "63376", "62040", "62226"}
	for _, zip := range valid {
		if !IsValid(zip) {
			t.Errorf("IsValid(%q) = false, want true", zip)
		}
	}

	invalid := []string{"", "90210", "00000", "6311", "631100", " 63110", "63110 ", "abcde"}
	for _, zip := range invalid {
		if IsValid(zip) {
			t.Errorf("IsValid(%q) = true, want false", zip)
		}
	}
}

func TestAllMatchesWhitelist(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All returned no zip codes")
	}
	for _, zip := range all {
		if !IsValid(zip) {
			t.Errorf("All() contains %q but IsValid rejects it", zip)
		}
	}

	// Mutating the returned slice must not leak into the whitelist.
	probe := all[0]
	all[0] = "00000"
	if !IsValid(probe) {
		t.Errorf("mutating All() result changed the whitelist")
	}
}
