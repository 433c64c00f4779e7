package uuid

import "testing"

func TestNew(t *testing.T) {
	a := New()
	b := New()
	if a == b {
		t.Fatal("expected distinct ids")
	}
	if !IsValid(a) {
		t.Fatalf("expected %q to be a valid uuid", a)
	}
	if a[14] != '7' {
		t.Errorf("expected version 7 uuid, got %q", a)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("0190F0C2-7A3B-7C4D-8E5F-0123456789AB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0190f0c2-7a3b-7c4d-8e5f-0123456789ab" {
		t.Errorf("expected lower-case canonical form, got %q", got)
	}

	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for invalid uuid")
	}
	if IsValid("") {
		t.Error("empty string should not be a valid uuid")
	}
}
