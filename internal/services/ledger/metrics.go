package ledger

import "time"

// NoopMetricsCollector is the default collector when metrics are not wired.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOperationDuration(operation string, duration time.Duration) {}
func (NoopMetricsCollector) RecordMutation(operation string, amount float64)                  {}
func (NoopMetricsCollector) RecordError(operation, errType string)                            {}
