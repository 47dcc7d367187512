package domain

import "time"

// ProtectedNumber - номер телефона, закрытый от поиска администратором.
// На один номер существует не больше одной активной записи.
type ProtectedNumber struct {
	ID            int64     `json:"id" db:"id"`
	PhoneNumber   string    `json:"phone_number" db:"phone_number"`
	ProtectedBy   int64     `json:"protected_by" db:"protected_by"`
	ProtectedDate time.Time `json:"protected_date" db:"protected_date"`
	Reason        string    `json:"reason" db:"reason"`
}
