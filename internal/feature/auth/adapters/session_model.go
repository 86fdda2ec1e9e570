package adapters

import (
	"time"

	"carprice_backend/internal/feature/auth/domain/entity"
)

// SessionModel はセッションのGORMテーブル定義です。
// ドメインエンティティとDBスキーマを分離するためのモデルです。
type SessionModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    uint   `gorm:"index;not null"`
	UserName  string `gorm:"size:100"`
	UserAgent string `gorm:"size:255"`
	IPAddress string `gorm:"size:45"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
	RevokedAt *time.Time
}

// TableName はGORMが使用するテーブル名を指定します。
func (SessionModel) TableName() string {
	return "sessions"
}

// toEntity はモデルをドメインエンティティに変換します。
func (m *SessionModel) toEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserAgent: m.UserAgent,
		IPAddress: m.IPAddress,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
	}
}

// fromEntity はドメインエンティティをモデルに変換します。
func fromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		UserName:  s.UserName,
		UserAgent: s.UserAgent,
		IPAddress: s.IPAddress,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		RevokedAt: s.RevokedAt,
	}
}
