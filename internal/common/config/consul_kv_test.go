package config

import "testing"

func TestLoadConfigFromConsulAddrRejectsBadInput(t *testing.T) {
	if _, err := LoadConfigFromConsulAddr("no-port-here", "fleetbook/booking-service"); err == nil {
		t.Fatalf("expected error for address without port")
	}
	if _, err := LoadConfigFromConsulAddr("localhost:abc", "fleetbook/booking-service"); err == nil {
		t.Fatalf("expected error for non-numeric port")
	}
	if _, err := LoadConfigFromConsulKV("localhost", 8500, ""); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
