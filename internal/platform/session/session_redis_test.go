package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"carprice_backend/internal/feature/auth/domain/entity"
	"carprice_backend/internal/feature/auth/usecase"
)

func testSession(id string) *entity.Session {
	now := time.Now().Truncate(time.Second)
	return &entity.Session{
		ID:        id,
		UserID:    1,
		UserName:  "Test User",
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSessionRedis_Create(t *testing.T) {
	t.Run("already expired session is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		store := NewSessionRedis(rdb, "session")
		s := testSession("expired")
		s.ExpiresAt = time.Now().Add(-time.Minute)

		err := store.Create(context.Background(), s)

		if err == nil {
			t.Fatal("expected error for expired session")
		}
		// No Redis command may be issued
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unexpected redis commands: %v", err)
		}
	})
}

func TestSessionRedis_FindByID(t *testing.T) {
	t.Run("returns stored session", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		expected := testSession("abc123")
		data, _ := json.Marshal(expected)
		mock.ExpectGet("session:abc123").SetVal(string(data))

		store := NewSessionRedis(rdb, "session")
		got, err := store.FindByID(context.Background(), "abc123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != expected.ID || got.UserID != expected.UserID || got.UserName != expected.UserName {
			t.Errorf("session does not match: got %+v", got)
		}
		if !got.ExpiresAt.Equal(expected.ExpiresAt) {
			t.Errorf("expected expiry %v, got %v", expected.ExpiresAt, got.ExpiresAt)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled mock expectations: %v", err)
		}
	})

	t.Run("missing key returns ErrSessionNotFound", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		mock.ExpectGet("session:missing").RedisNil()

		store := NewSessionRedis(rdb, "session")
		got, err := store.FindByID(context.Background(), "missing")

		if got != nil {
			t.Error("session should be nil")
		}
		if !errors.Is(err, usecase.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got: %v", err)
		}
	})

	t.Run("corrupted payload returns error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		mock.ExpectGet("session:bad").SetVal("not json")

		store := NewSessionRedis(rdb, "session")
		_, err := store.FindByID(context.Background(), "bad")

		if err == nil {
			t.Fatal("expected error for corrupted payload")
		}
	})

	t.Run("redis failure propagates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		expectedErr := errors.New("connection refused")
		mock.ExpectGet("session:abc").SetErr(expectedErr)

		store := NewSessionRedis(rdb, "session")
		_, err := store.FindByID(context.Background(), "abc")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected %v, got: %v", expectedErr, err)
		}
	})
}

func TestSessionRedis_Revoke(t *testing.T) {
	t.Run("missing session returns ErrSessionNotFound", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		mock.ExpectGet("session:missing").RedisNil()

		store := NewSessionRedis(rdb, "session")
		err := store.Revoke(context.Background(), "missing")

		if !errors.Is(err, usecase.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got: %v", err)
		}
	})
}

func TestSessionRedis_DeleteExpired(t *testing.T) {
	// Redis handles expiration via TTL; DeleteExpired must be a no-op.
	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	store := NewSessionRedis(rdb, "session")
	deleted, err := store.DeleteExpired(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted, got %d", deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected redis commands: %v", err)
	}
}
