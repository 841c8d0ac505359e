package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ideaboard/ideaboard-go/internal/model"
)

// openTestDB returns a migrated in-memory SQLite database. NewDB caps the
// pool at one connection for sqlite, which also keeps the memory database
// alive for the test's duration.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(context.Background(), db, "sqlite"); err != nil {
		t.Fatalf("Migrate() unexpected error: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *sql.DB, username string) *model.User {
	t.Helper()

	user := &model.User{Username: username, PasswordHash: "x"}
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}
	return user
}

func createTestIdea(t *testing.T, db *sql.DB, authorID *int64) *model.Idea {
	t.Helper()

	idea := &model.Idea{
		What:         "A test idea",
		Who:          "Testers",
		Features:     "1. Exists",
		DoneCriteria: "It is stored",
		Inspiration:  "Other tests",
		AuthorID:     authorID,
	}
	if err := NewIdeaRepository(db).Insert(context.Background(), idea); err != nil {
		t.Fatalf("creating idea: %v", err)
	}
	return idea
}
