package domain

import "time"

// SearchRecord - запись истории поиска. Append-only: создаётся один раз
// после списания кредитов и никогда не изменяется.
type SearchRecord struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	ServiceType string    `json:"service_type" db:"service_type"`
	Query       string    `json:"query" db:"query"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}

// ServiceStat - количество поисков по одному типу сервиса
type ServiceStat struct {
	ServiceType string `json:"service_type" db:"service_type"`
	Count       int64  `json:"count" db:"count"`
}
