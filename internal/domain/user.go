package domain

import "time"

// DefaultCredits стартовый баланс нового пользователя
const DefaultCredits = 20

// User - пользователь бота. Ключ - Telegram user_id, баланс в кредитах.
// Поля бана выставляются и сбрасываются только вместе.
type User struct {
	UserID        int64      `json:"user_id" db:"user_id"`
	Username      *string    `json:"username,omitempty" db:"username"`
	FirstName     string     `json:"first_name" db:"first_name"`
	LastName      *string    `json:"last_name,omitempty" db:"last_name"`
	Credits       int64      `json:"credits" db:"credits"`
	TotalSearches int64      `json:"total_searches" db:"total_searches"`
	IsBanned      bool       `json:"is_banned" db:"is_banned"`
	BanReason     string     `json:"ban_reason" db:"ban_reason"`
	BannedBy      *int64     `json:"banned_by,omitempty" db:"banned_by"`
	BanDate       *time.Time `json:"ban_date,omitempty" db:"ban_date"`
	JoinedDate    time.Time  `json:"joined_date" db:"joined_date"`
	LastActive    time.Time  `json:"last_active" db:"last_active"`
}
