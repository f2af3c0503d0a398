package dto

type CashBoxResponse struct {
	ID       uint    `json:"id"`
	UserID   uint    `json:"user_id"`
	OpenedAt string  `json:"opened_at"`
	ClosedAt *string `json:"closed_at,omitempty"`
	IsOpen   bool    `json:"is_open"`
}

type CashBoxHistoryResponse struct {
	Data  []CashBoxResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
