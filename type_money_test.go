package tracker

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(1725), "$1,725.00"},
		{USD(0.125), "$0.13"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := USD(301.25).SignedString(); got != "+$301.25" {
		t.Errorf("SignedString(301.25) = %q, want %q", got, "+$301.25")
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("172.50", "USD")
	if err != nil {
		t.Fatalf("ParseMoney() unexpected error: %v", err)
	}
	if !m.Equal(USD(172.5)) {
		t.Errorf("ParseMoney() = %v, want %v", m, USD(172.5))
	}
	if _, err := ParseMoney("abc", "USD"); err == nil {
		t.Errorf("ParseMoney(abc) expected an error")
	}
}
