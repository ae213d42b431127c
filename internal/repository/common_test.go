package repository_test

import (
	"context"
	"log"
	"os"
	"testing"

	"schedulink-backend/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
)

// testDB 是測試用的資料庫連接池
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	db, cleanup, err := testutil.SetupDatabase()
	if err != nil {
		// 沒有測試資料庫時略過整合測試
		log.Printf("Skipping repository tests: %v", err)
		os.Exit(0)
	}
	testDB = db
	log.Println("Running repository tests...")

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(context.Background(),
		"TRUNCATE registrations, notifications, events, resources, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func getTestDB() *pgxpool.Pool {
	if testDB == nil {
		panic("testDB is not initialized. Make sure TestMain has run.")
	}
	return testDB
}

// createTestEvent 輔助函數：建立指定日期的活動
func createTestEvent(t *testing.T, title, date string) int {
	t.Helper()
	var id int
	err := testDB.QueryRow(context.Background(),
		`INSERT INTO events (title, "date", "time") VALUES ($1, $2::date, '10:00') RETURNING id`,
		title, date,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return id
}

func createTestRegistration(t *testing.T, eventID int, name, status string) int {
	t.Helper()
	var id int
	err := testDB.QueryRow(context.Background(),
		`INSERT INTO registrations (event_id, participant_name, email, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		eventID, name, name+"@x.io", status,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test registration: %v", err)
	}
	return id
}

func createTestNotification(t *testing.T, eventID int, status string) int {
	t.Helper()
	var id int
	err := testDB.QueryRow(context.Background(),
		`INSERT INTO notifications (event_id, message, status) VALUES ($1, 'hello', $2) RETURNING id`,
		eventID, status,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test notification: %v", err)
	}
	return id
}

// assertRowCount 輔助函數：檢查資料表的行數
func assertRowCount(t *testing.T, table string, expected int) {
	t.Helper()
	var count int
	if err := testDB.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	if count != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, count)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
