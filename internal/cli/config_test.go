package cli

import "testing"

func TestDatabasePathEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMOB_DB", "/tmp/override.db")

	if got := databasePath(); got != "/tmp/override.db" {
		t.Errorf("databasePath() = %q, want %q", got, "/tmp/override.db")
	}
}

func TestServerPortDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMOB_PORT", "")

	if got := serverPort(); got != 8080 {
		t.Errorf("serverPort() = %d, want 8080", got)
	}
}

func TestServerPortEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMOB_PORT", "9090")

	if got := serverPort(); got != 9090 {
		t.Errorf("serverPort() = %d, want 9090", got)
	}
}

func TestServerPortIgnoresGarbageEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMOB_PORT", "not-a-port")

	if got := serverPort(); got != 8080 {
		t.Errorf("serverPort() = %d, want 8080", got)
	}
}
