package amqp

import (
	"encoding/json"
	"time"

	"mmexport/internal/report"
)

// ReportMessage carries a rendered expense report
type ReportMessage struct {
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Records   int       `json:"records"`
	Total     string    `json:"total"`
	Lines     []string  `json:"lines"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReportMessage creates a message from a finished report
func NewReportMessage(rep *report.Report) *ReportMessage {
	return &ReportMessage{
		Start:     rep.Range.Start.String(),
		End:       rep.Range.End.String(),
		Records:   rep.Len(),
		Total:     rep.TotalText(),
		Lines:     rep.Lines(),
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportMessageFromJSON creates a message from JSON bytes
func ReportMessageFromJSON(data []byte) (*ReportMessage, error) {
	var msg ReportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
