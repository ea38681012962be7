package entities

import "testing"

func TestParseDeviceType(t *testing.T) {
	cases := []struct {
		raw  string
		want DeviceType
	}{
		{"phone", DeviceTypePhone},
		{" Laptop ", DeviceTypeLaptop},
		{"TV", DeviceTypeTV},
		{"console", DeviceTypeConsole},
		{"washing machine", DeviceTypeOther},
		{"", DeviceTypeOther},
	}
	for _, tc := range cases {
		if got := ParseDeviceType(tc.raw); got != tc.want {
			t.Fatalf("ParseDeviceType(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestBrandKey(t *testing.T) {
	if got := BrandKey(" Apple ", DeviceTypePhone); got != "phone#apple" {
		t.Fatalf("unexpected brand key: %s", got)
	}
}

func TestModelKey(t *testing.T) {
	if got := ModelKey("phone#apple", " iPhone 15 "); got != "phone#apple#iphone 15" {
		t.Fatalf("unexpected model key: %s", got)
	}
}
