package metadomain

// SpendInsight é uma linha de /insights com fields=spend e time_increment=1
type SpendInsight struct {
	AccountID string `json:"account_id,omitempty"`
	Spend     string `json:"spend"`
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`
}

type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next,omitempty"`
}

type InsightsResponse struct {
	Data   []SpendInsight `json:"data"`
	Paging *Paging        `json:"paging,omitempty"`
}
