// Package usecase はcontactフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
)

// Mailer はメール送信のインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Mailer interface {
	// Send は件名と本文を指定して1通のメールを送信します。
	Send(to, subject, body string) error
}

// Message は問い合わせフォームの1件分の内容です。
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// contactUsecase は問い合わせフォームの送信処理を実装します。
type contactUsecase struct {
	mailer     Mailer
	adminEmail string
}

// NewContactUsecase はcontactUsecaseの新しいインスタンスを生成します。
func NewContactUsecase(mailer Mailer, adminEmail string) *contactUsecase {
	return &contactUsecase{mailer: mailer, adminEmail: adminEmail}
}

// Submit は管理者への通知メールと送信者への確認メールを送信します。
// どちらの送信も失敗し得るベストエフォートの副作用で、失敗は呼び出し元へ
// 返されますが、永続状態は一切変更しません。
func (u *contactUsecase) Submit(ctx context.Context, msg *Message) error {
	adminSubject := fmt.Sprintf("New Contact Form: %s (from %s)", msg.Subject, msg.Name)
	adminBody := fmt.Sprintf("Message from: %s (%s)\n\n%s", msg.Name, msg.Email, msg.Body)
	if err := u.mailer.Send(u.adminEmail, adminSubject, adminBody); err != nil {
		return fmt.Errorf("failed to notify admin: %w", err)
	}

	userSubject := "We've received your message!"
	userBody := fmt.Sprintf("Hello %s,\n\nThank you for contacting us. We will get back to you shortly.", msg.Name)
	if err := u.mailer.Send(msg.Email, userSubject, userBody); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}

	return nil
}
