package storage

import "testing"

func TestNewRejectsInvalidConnectionString(t *testing.T) {
	if _, err := New("not-a-connection-string", "garden"); err == nil {
		t.Fatal("expected error for invalid connection string")
	}
}
