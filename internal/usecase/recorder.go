package usecase

import "github.com/polkiloo/orderdesk/internal/domain/model"

// Operation outcomes reported to Recorder.
const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultNotFound = "not_found"
)

// Recorder receives outcomes of account and order operations.
type Recorder interface {
	AccountOperation(operation, result string)
	OrderOperation(operation, result string)
	OrderTransition(status model.OrderStatus)
}

// NopRecorder discards all observations.
type NopRecorder struct{}

func (NopRecorder) AccountOperation(string, string)   {}
func (NopRecorder) OrderOperation(string, string)     {}
func (NopRecorder) OrderTransition(model.OrderStatus) {}
