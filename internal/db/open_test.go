package db

import "testing"

func TestDetectDriver(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/db":   "postgres",
		"pgx://localhost/db":                 "postgres",
		"mysql://u:p@tcp(localhost:3306)/db": "mysql",
		"u:p@tcp(localhost:3306)/db":         "mysql",
		"sqlserver://u:p@localhost:1433":     "sqlserver",
		"file:data/catalog.db":               "sqlite",
		":memory:":                           "sqlite",
		"":                                   "sqlite",
	}
	for dsn, want := range cases {
		if got := detectDriver(dsn); got != want {
			t.Fatalf("detectDriver(%q) = %s, want %s", dsn, got, want)
		}
	}
}

func TestNormalizeMySQLDSN(t *testing.T) {
	if got := normalizeMySQLDSN("mysql://u:p@tcp(h:3306)/db"); got != "u:p@tcp(h:3306)/db?parseTime=true" {
		t.Fatalf("unexpected dsn %s", got)
	}
	if got := normalizeMySQLDSN("u:p@tcp(h:3306)/db?charset=utf8mb4"); got != "u:p@tcp(h:3306)/db?charset=utf8mb4&parseTime=true" {
		t.Fatalf("unexpected dsn %s", got)
	}
}

func TestOpenMemory(t *testing.T) {
	gdb, err := Open("memory", "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := gdb.Exec("CREATE TABLE t (id INTEGER)").Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := gdb.Exec("INSERT INTO t VALUES (1)").Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	var n int64
	if err := gdb.Raw("SELECT COUNT(*) FROM t").Scan(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 row, got %d", n)
	}
	if _, err := Open("oracle", "x"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}
