package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockMailer はMailerインターフェースのモック実装です。
type mockMailer struct {
	// SendFunc is called when the Send method is invoked.
	SendFunc func(to, subject, body string) error

	sent []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

// Send はモックのSend関数を呼び出し、送信内容を記録します。
func (m *mockMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, body)
	}
	return nil
}

func testMessage() *Message {
	return &Message{
		Name:    "Test User",
		Email:   "test@example.com",
		Subject: "Price question",
		Body:    "How is the price estimated?",
	}
}

func TestContactUsecase_Submit(t *testing.T) {
	t.Run("sends notification and confirmation", func(t *testing.T) {
		mailer := &mockMailer{}
		uc := NewContactUsecase(mailer, "admin@example.com")

		err := uc.Submit(context.Background(), testMessage())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mailer.sent) != 2 {
			t.Fatalf("expected 2 mails, got %d", len(mailer.sent))
		}

		admin := mailer.sent[0]
		if admin.to != "admin@example.com" {
			t.Errorf("admin mail went to %q", admin.to)
		}
		if !strings.Contains(admin.subject, "Price question") || !strings.Contains(admin.subject, "Test User") {
			t.Errorf("admin subject missing details: %q", admin.subject)
		}
		if !strings.Contains(admin.body, "test@example.com") || !strings.Contains(admin.body, "How is the price estimated?") {
			t.Errorf("admin body missing details: %q", admin.body)
		}

		user := mailer.sent[1]
		if user.to != "test@example.com" {
			t.Errorf("confirmation went to %q", user.to)
		}
		if user.subject != "We've received your message!" {
			t.Errorf("unexpected confirmation subject: %q", user.subject)
		}
		if !strings.Contains(user.body, "Hello Test User") {
			t.Errorf("confirmation body missing greeting: %q", user.body)
		}
	})

	t.Run("admin notification failure stops the flow", func(t *testing.T) {
		expectedErr := errors.New("smtp down")
		mailer := &mockMailer{
			SendFunc: func(to, subject, body string) error {
				return expectedErr
			},
		}
		uc := NewContactUsecase(mailer, "admin@example.com")

		err := uc.Submit(context.Background(), testMessage())

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected %v, got: %v", expectedErr, err)
		}
		if len(mailer.sent) != 1 {
			t.Errorf("confirmation must not be attempted after a failed notification, sent %d", len(mailer.sent))
		}
	})

	t.Run("confirmation failure is reported", func(t *testing.T) {
		expectedErr := errors.New("mailbox full")
		mailer := &mockMailer{
			SendFunc: func(to, subject, body string) error {
				if to == "test@example.com" {
					return expectedErr
				}
				return nil
			},
		}
		uc := NewContactUsecase(mailer, "admin@example.com")

		err := uc.Submit(context.Background(), testMessage())

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected %v, got: %v", expectedErr, err)
		}
	})
}
