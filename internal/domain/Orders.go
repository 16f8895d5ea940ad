package domain

import "github.com/shopspring/decimal"

type SaveOrdersRequest struct {
	Team   string `json:"team"`
	Orders string `json:"orders"`
}

type SaveOrdersResponse struct {
	Message     string               `json:"message"`
	BatchID     string               `json:"batch_id,omitempty"`
	Team        Team                 `json:"team"`
	OrdersSaved int                  `json:"orders_saved"`
	TotalSales  decimal.Decimal      `json:"total_sales"`
	Rejected    int                  `json:"rejected"`
	Rejections  map[RejectReason]int `json:"rejections"`
	Details     []BlockOutcome       `json:"details"`
}

type ParsePreviewRequest struct {
	Orders string `json:"orders"`
}

type ParsePreviewResponse struct {
	Blocks     int                  `json:"blocks"`
	Accepted   int                  `json:"accepted"`
	TotalSales decimal.Decimal      `json:"total_sales"`
	Rejections map[RejectReason]int `json:"rejections"`
	Details    []BlockOutcome       `json:"details"`
}

type ClearDataResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
