package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/accounts", "/api/v1/accounts"},
		{"/api/v1/accounts/01HXYZ", "/api/v1/accounts/:id"},
		{"/api/v1/accounts/01HXYZ/summary", "/api/v1/accounts/:id/summary"},
		{"/api/v1/accounts/01HXYZ/expenses", "/api/v1/accounts/:id/expenses"},
		{"/api/v1/accounts/total", "/api/v1/accounts/total"},
		{"/api/v1/expenses/01HXYZ/receipt", "/api/v1/expenses/:id/receipt"},
		{"/api/v1/deposits/01HXYZ", "/api/v1/deposits/:id"},
		{"/api/v1/ledger/repair/01HXYZ", "/api/v1/ledger/repair/:id"},
		{"/api/v1/settings", "/api/v1/settings"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
