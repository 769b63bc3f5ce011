package config

import "testing"

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("CONFIG_TEST_SET", "value")

	if got := getEnv("CONFIG_TEST_SET", "fallback"); got != "value" {
		t.Errorf("getEnv set = %q, want %q", got, "value")
	}
	if got := getEnv("CONFIG_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnv unset = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CONFIG_TEST_INT", "12")
	t.Setenv("CONFIG_TEST_BAD_INT", "twelve")

	if got := getEnvInt("CONFIG_TEST_INT", 4); got != 12 {
		t.Errorf("getEnvInt = %d, want 12", got)
	}
	if got := getEnvInt("CONFIG_TEST_BAD_INT", 4); got != 4 {
		t.Errorf("getEnvInt malformed = %d, want fallback 4", got)
	}
	if got := getEnvInt("CONFIG_TEST_MISSING_INT", 4); got != 4 {
		t.Errorf("getEnvInt missing = %d, want fallback 4", got)
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.example.com",
		Port:     "5432",
		User:     "pos",
		Password: "secret",
		DBName:   "ergin_hardware",
		SSLMode:  "require",
	}

	want := "host=db.example.com port=5432 user=pos password=secret dbname=ergin_hardware sslmode=require"
	if got := db.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
