package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"urn:uuid:123e4567-e89b-12d3-a456-426614174000",
		"64f1c2a9e4b0a1b2c3d4e5f6",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidMAC(t *testing.T) {
	valid := []string{"aa:bb:cc:dd:ee:ff", "AA-BB-CC-DD-EE-FF", "aabbccddeeff"}
	invalid := []string{"", "aa:bb", "hello"}
	for _, s := range valid {
		if !IsValidMAC(s) {
			t.Errorf("IsValidMAC(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidMAC(s) {
			t.Errorf("IsValidMAC(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "john.doe", "emp_01", "a-b-c"}
	invalid := []string{"ab", "john doe", "user@x", ""}
	for _, s := range valid {
		if !IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = true, want false", s)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2025, 1, true},
		{2025, 12, true},
		{2025, 0, false},
		{2025, 13, false},
		{1999, 6, false},
	}
	for _, c := range cases {
		if got := IsValidPeriod(c.year, c.month); got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "wifi_mac", Message: "wifi_mac is required"},
		{Field: "device_mac", Message: "device_mac is required"},
	}
	if got := errs.Error(); got != "wifi_mac: wifi_mac is required; device_mac: device_mac is required" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if len(m) != 2 || m["device_mac"] != "device_mac is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
