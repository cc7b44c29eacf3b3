package shared_test

import (
	"testing"
	"time"

	"hotel_manager/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STORE_DRIVER", "SQLITE_PATH", "CACHE_TTL_SECONDS", "RECHECK_AVAILABILITY_ON_UPDATE", "REDIS_ADDR"} {
		t.Setenv(k, "")
	}
	c := shared.Load()
	if c.StoreDriver != shared.DriverSQLite {
		t.Fatalf("driver: %q", c.StoreDriver)
	}
	if c.SQLitePath != "hotel.db" {
		t.Fatalf("sqlite path: %q", c.SQLitePath)
	}
	if c.CacheTTL != 300*time.Second {
		t.Fatalf("ttl: %v", c.CacheTTL)
	}
	if c.RecheckOnEdit {
		t.Fatalf("recheck should default to off")
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MySQL")
	t.Setenv("MYSQL_DSN", "u:p@tcp(db:3306)/hotel")
	t.Setenv("RECHECK_AVAILABILITY_ON_UPDATE", "true")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	c := shared.Load()
	if c.StoreDriver != shared.DriverMySQL || c.MySQLDSN != "u:p@tcp(db:3306)/hotel" {
		t.Fatalf("unexpected store config: %+v", c)
	}
	if !c.RecheckOnEdit || c.CacheTTL != time.Minute {
		t.Fatalf("unexpected flags: %+v", c)
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	c := shared.Config{StoreDriver: "postgres"}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
