package model

import "time"

// AccountModel mirrors the 'accounts' table. PostgreSQL assigns ids from a bigserial sequence.
type AccountModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(320);not null;uniqueIndex:idx_accounts_email"`
	Password  string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
