package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testModel struct {
	ID   int
	Name string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&testModel{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func TestWithTxCommitsAndRollsBack(t *testing.T) {
	conn := newTestDB(t)
	client := &Client{conn: conn}

	ctx := context.Background()
	if err := client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(&testModel{Name: "committed"}).Error
	}); err != nil {
		t.Fatalf("WithTx commit failed: %v", err)
	}

	boom := errors.New("boom")
	if err := client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&testModel{Name: "rolled-back"}).Error; err != nil {
			return err
		}
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	var count int64
	if err := conn.Model(&testModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected only the committed row, got %d", count)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil, "") {
		t.Fatal("nil error should not match")
	}
	pgStyle := errors.New(`ERROR: duplicate key value violates unique constraint "items_name_key"`)
	if !IsUniqueViolation(pgStyle, "") {
		t.Fatal("expected generic duplicate key match")
	}
	if !IsUniqueViolation(pgStyle, "items_name_key") {
		t.Fatal("expected constraint name match")
	}
	sqliteStyle := errors.New("UNIQUE constraint failed: items.name")
	if !IsUniqueViolation(sqliteStyle, "") {
		t.Fatal("expected sqlite duplicate match")
	}
	if !IsUniqueViolation(sqliteStyle, "items_name_key") {
		t.Fatal("sqlite violations should match regardless of constraint name")
	}
	other := errors.New("connection refused")
	if IsUniqueViolation(other, "items_name_key") {
		t.Fatal("non-unique errors should not match")
	}
}
