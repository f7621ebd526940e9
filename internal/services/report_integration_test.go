package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/arash-p/TeamTrackBack/internal/database"
	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/repository"
)

var (
	testDBOnce sync.Once
	testDBPool *pgxpool.Pool
	testDBErr  error
)

func TestReportEndToEnd(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)

	coachID := createTestUser(t, ctx, pool, models.RoleCoach)
	playerID := createTestUser(t, ctx, pool, models.RolePlayer)
	t.Cleanup(func() { cleanupTestUsers(t, ctx, pool, coachID, playerID) })

	sessionService := NewSessionService(repository.NewSessionRepository(pool))
	performanceService := NewPerformanceService(repository.NewPerformanceRepository(pool), nil)
	reportService := NewReportService(
		repository.NewSessionRepository(pool),
		repository.NewPerformanceRepository(pool),
		repository.NewFeedbackRepository(pool),
		repository.NewSurveyRepository(pool),
	)

	name := "Drill"
	date := "06/01/2025"
	start := "09:00"
	end := "10:30"
	sessionID, err := sessionService.CreateSession(ctx, SessionInput{
		Name:       &name,
		Date:       &date,
		StartClock: &start,
		EndClock:   &end,
		CoachID:    &coachID,
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	for i := 0; i < 3; i++ {
		speed := float64(3 + i)
		if _, err := performanceService.RecordPerformance(ctx, models.PerformanceSample{
			PlayerID:  &playerID,
			SessionID: &sessionID,
			Speed:     &speed,
		}); err != nil {
			t.Fatalf("RecordPerformance %d: %v", i, err)
		}
	}

	report, err := reportService.GetReport(ctx, sessionID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if report.Session == nil || report.Session.Title != "Drill" {
		t.Fatalf("expected session Drill, got %+v", report.Session)
	}
	if report.Session.StartTime == nil || *report.Session.StartTime != "2025-06-01 09:00:00" {
		t.Fatalf("expected normalized start time, got %v", report.Session.StartTime)
	}
	if len(report.Performances) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(report.Performances))
	}
	for _, sample := range report.Performances {
		if sample.SessionID == nil || *sample.SessionID != sessionID {
			t.Fatalf("expected sample scoped to session %d, got %+v", sessionID, sample)
		}
	}
	if report.Feedback == nil || report.Survey == nil {
		t.Fatal("expected non-nil feedback and survey lists")
	}
}

func TestConcurrentIngestionLosesNoWrites(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)

	playerID := createTestUser(t, ctx, pool, models.RolePlayer)
	t.Cleanup(func() { cleanupTestUsers(t, ctx, pool, playerID) })

	sessionService := NewSessionService(repository.NewSessionRepository(pool))
	performanceService := NewPerformanceService(repository.NewPerformanceRepository(pool), nil)

	sessionID, err := sessionService.CreateSession(ctx, SessionInput{})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, "DELETE FROM sessions WHERE id = $1", sessionID)
	})

	const writers = 100
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cadence := float64(i)
			_, err := performanceService.RecordPerformance(ctx, models.PerformanceSample{
				PlayerID:   &playerID,
				SessionID:  &sessionID,
				CadenceSPM: &cadence,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("RecordPerformance: %v", err)
		}
	}

	samples, err := repository.NewPerformanceRepository(pool).ListBySession(ctx, sessionID)
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	if len(samples) != writers {
		t.Fatalf("expected %d rows, got %d", writers, len(samples))
	}
}

func integrationTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testDBOnce.Do(func() {
		_ = godotenv.Load(".env")
		_ = godotenv.Load(filepath.Join("..", "..", ".env"))

		dbURL := os.Getenv("DB_URL")
		if dbURL == "" {
			testDBErr = fmt.Errorf("DB_URL is not set")
			return
		}

		cfg, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			testDBErr = err
			return
		}

		testDBPool, testDBErr = pgxpool.NewWithConfig(context.Background(), cfg)
		if testDBErr != nil {
			return
		}
		if testDBErr = testDBPool.Ping(context.Background()); testDBErr != nil {
			return
		}
		testDBErr = database.Bootstrap(context.Background(), testDBPool)
	})

	if testDBErr != nil {
		t.Skipf("skipping integration test: %v", testDBErr)
	}
	return testDBPool
}

func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, role string) int64 {
	t.Helper()

	username := fmt.Sprintf("report-test-%s-%d", role, time.Now().UnixNano())
	user := &models.User{
		Username:     &username,
		PasswordHash: "test-hash",
		Role:         role,
	}
	if err := repository.NewUserRepository(pool).Create(ctx, user); err != nil {
		t.Fatalf("Create(%s): %v", role, err)
	}
	return user.ID
}

func cleanupTestUsers(t *testing.T, ctx context.Context, pool *pgxpool.Pool, userIDs ...int64) {
	t.Helper()

	if len(userIDs) == 0 {
		return
	}

	if _, err := pool.Exec(ctx, "DELETE FROM performance WHERE player_id = ANY($1)", userIDs); err != nil {
		t.Fatalf("cleanup performance: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM feedback WHERE player_id = ANY($1) OR coach_id = ANY($1)", userIDs); err != nil {
		t.Fatalf("cleanup feedback: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM survey WHERE player_id = ANY($1)", userIDs); err != nil {
		t.Fatalf("cleanup survey: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM sessions WHERE coach_id = ANY($1)", userIDs); err != nil {
		t.Fatalf("cleanup sessions: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM users WHERE id = ANY($1)", userIDs); err != nil {
		t.Fatalf("cleanup users: %v", err)
	}
}
