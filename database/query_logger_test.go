package database

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestQueryLoggerKeepsLatestFirst(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 2", time.Millisecond, 1, nil)

	queries := ql.GetQueries()
	if len(queries) != 2 {
		t.Fatalf("got %d queries, want 2", len(queries))
	}
	if queries[0].SQL != "SELECT 2" {
		t.Errorf("latest query = %q, want SELECT 2", queries[0].SQL)
	}
}

func TestQueryLoggerCapsAtMaxLogs(t *testing.T) {
	ql := NewQueryLogger(3)

	for i := 0; i < 5; i++ {
		ql.LogQuery(fmt.Sprintf("SELECT %d", i), time.Millisecond, 1, nil)
	}

	queries := ql.GetQueries()
	if len(queries) != 3 {
		t.Fatalf("got %d queries, want cap of 3", len(queries))
	}
	if queries[0].SQL != "SELECT 4" {
		t.Errorf("latest query = %q, want SELECT 4", queries[0].SQL)
	}
	if got := ql.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5 despite eviction", got)
	}
}

func TestQueryLoggerRecentAndClear(t *testing.T) {
	ql := NewQueryLogger(10)
	ql.LogQuery("INSERT INTO products", time.Millisecond, 1, errors.New("duplicate key"))
	ql.LogQuery("SELECT *", time.Millisecond, 4, nil)

	recent := ql.GetRecentQueries(1)
	if len(recent) != 1 || recent[0].SQL != "SELECT *" {
		t.Errorf("GetRecentQueries(1) = %+v, want single SELECT *", recent)
	}

	all := ql.GetQueries()
	if all[1].Error != "duplicate key" {
		t.Errorf("error not recorded: %+v", all[1])
	}

	ql.Clear()
	if got := len(ql.GetQueries()); got != 0 {
		t.Errorf("after Clear len = %d, want 0", got)
	}
}
