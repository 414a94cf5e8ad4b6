//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobscout/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := Connect(context.Background(), url)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	return db
}

func TestIntegration_Job_UpsertBumpsTimesSeen(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	job := &types.Job{
		Title:       "Backend Engineer",
		Company:     "Test Corp",
		Location:    "Remote",
		Description: "Build services in Go.",
		URL:         "https://jobs.example.com/" + uuid.New().String(),
		Source:      "test",
		Remote:      true,
	}

	first, err := db.SaveJob(ctx, job)
	if err != nil {
		t.Fatalf("SaveJob failed: %v", err)
	}
	if first.TimesSeen != 1 {
		t.Errorf("TimesSeen = %d, want 1", first.TimesSeen)
	}

	second, err := db.SaveJob(ctx, job)
	if err != nil {
		t.Fatalf("SaveJob (upsert) failed: %v", err)
	}
	if second.TimesSeen != 2 {
		t.Errorf("TimesSeen after upsert = %d, want 2", second.TimesSeen)
	}
	if second.ID != first.ID {
		t.Errorf("upsert changed the job ID")
	}
}

func TestIntegration_Job_NotificationLifecycle(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	job := &types.Job{
		Title: "Platform Engineer",
		URL:   "https://jobs.example.com/" + uuid.New().String(),
	}
	saved, err := db.SaveJob(ctx, job)
	if err != nil {
		t.Fatalf("SaveJob failed: %v", err)
	}

	unnotified, err := db.ListUnnotified(ctx, 0)
	if err != nil {
		t.Fatalf("ListUnnotified failed: %v", err)
	}
	found := false
	for _, j := range unnotified {
		if j.ID == saved.ID {
			found = true
		}
	}
	if !found {
		t.Error("saved job missing from unnotified list")
	}

	if err := db.MarkNotified(ctx, []uuid.UUID{saved.ID}); err != nil {
		t.Fatalf("MarkNotified failed: %v", err)
	}

	digest, err := db.ListForDigest(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("ListForDigest failed: %v", err)
	}
	found = false
	for _, j := range digest {
		if j.ID == saved.ID {
			found = true
		}
	}
	if !found {
		t.Error("notified job missing from digest list")
	}

	if err := db.MarkDigestSent(ctx, []uuid.UUID{saved.ID}); err != nil {
		t.Fatalf("MarkDigestSent failed: %v", err)
	}
}
