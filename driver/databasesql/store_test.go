package databasesql

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/docpg/docpg/driver"
)

// newTestDB opens a database/sql handle from DATABASE_URL, skipping the
// test when it is not set. The pgx-based testutil helper is deliberately
// not used here: this driver must be exercised through database/sql.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
		return nil
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("Failed to ping database: %v", err)
	}
	return db
}

func cleanTables(t *testing.T, db *sql.DB) {
	t.Helper()
	if _, err := db.Exec("TRUNCATE TABLE docpg_documents CASCADE"); err != nil {
		t.Fatalf("Failed to clean tables: %v", err)
	}
}

func TestIntegration_Store_DocumentLifecycle(t *testing.T) {
	db := newTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()
	cleanTables(t, db)

	ctx := context.Background()
	store := New(db).GetStore()

	doc, err := store.CreateDocument(ctx, driver.CreateDocumentParams{
		Collection: "calls",
		Title:      "Weekly sync",
		SourceType: "transcript",
		Content:    "Speaker 1: hello\n\nSpeaker 2: hi",
	})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	got, err := store.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got.SourceType != "transcript" {
		t.Errorf("Expected source type 'transcript', got '%s'", got.SourceType)
	}

	newContent := "Speaker 1: hello again"
	updated, err := store.UpdateDocument(ctx, doc.ID, driver.UpdateDocumentParams{Content: &newContent})
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if updated.Content != newContent {
		t.Errorf("Expected updated content, got '%s'", updated.Content)
	}

	docs, total, err := store.ListDocuments(ctx, driver.ListDocumentsParams{Collection: "calls"})
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if total != 1 || len(docs) != 1 {
		t.Errorf("Expected 1 document, got total=%d len=%d", total, len(docs))
	}

	if err := store.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}
	if _, err := store.GetDocument(ctx, doc.ID); !errors.Is(err, driver.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestIntegration_Store_StatsAcrossDrivers(t *testing.T) {
	db := newTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()
	cleanTables(t, db)

	ctx := context.Background()
	store := New(db).GetStore()

	for _, title := range []string{"one", "two", "three"} {
		if _, err := store.CreateDocument(ctx, driver.CreateDocumentParams{Title: title}); err != nil {
			t.Fatalf("CreateDocument failed: %v", err)
		}
	}

	stats, err := store.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalDocuments != 3 {
		t.Errorf("Expected 3 documents, got %d", stats.TotalDocuments)
	}
	if stats.BySourceType["note"] != 3 {
		t.Errorf("Expected 3 notes, got %v", stats.BySourceType)
	}
}
