// Package fetch acquires log records from a remote endpoint. The default
// path is a simulated endpoint with a fixed message catalog; Client
// implements the real HTTP contract.
package fetch

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minjae-dev/logsift/internal/record"
)

// maxLimit caps a single fetch regardless of the requested count.
const maxLimit = 100

// isoLayout matches the timestamp shape of the fetched records.
const isoLayout = "2006-01-02T15:04:05.000000"

// catalog is the fixed message rotation served by the simulated endpoint.
var catalog = []struct {
	level   string
	message string
}{
	{"INFO", "Application started successfully"},
	{"INFO", "Request received: GET /api/users"},
	{"DEBUG", "Database connection pool: 5 active, 10 idle"},
	{"WARN", "Slow query detected: 2.5s for user lookup"},
	{"ERROR", "Failed to connect to payment service: timeout"},
	{"INFO", "Request completed: 200 OK in 150ms"},
	{"ERROR", "Unhandled exception in /api/orders: NullPointerException"},
	{"WARN", "Memory usage at 85%"},
	{"INFO", "Cache hit rate: 94.5%"},
	{"ERROR", "Database connection failed: too many connections"},
	{"DEBUG", "Session created for user: user_12345"},
	{"INFO", "Scheduled job completed: cleanup_old_sessions"},
	{"WARN", "Rate limit approaching for IP: 192.168.1.100"},
	{"ERROR", "SSL certificate expires in 7 days"},
	{"INFO", "Health check passed"},
}

// Simulate produces up to limit synthetic records as if returned by the
// endpoint, cycling through the message catalog. The limit is capped at
// 100; a non-positive limit yields an empty batch. An optional level
// filters the catalog by exact level name, which
// can yield fewer than limit records since the iteration count stays
// capped. Every record in a batch shares a generated batch id.
func Simulate(endpoint string, limit int, level string) []record.Record {
	return simulateAt(endpoint, limit, level, time.Now())
}

// simulateAt is Simulate with an injectable base time for tests.
func simulateAt(_ string, limit int, level string, base time.Time) []record.Record {
	if limit < 0 {
		limit = 0
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	batchID := uuid.NewString()

	recs := make([]record.Record, 0, limit)
	for i := 0; i < limit; i++ {
		entry := catalog[i%len(catalog)]
		if level != "" && entry.level != level {
			continue
		}

		ts := time.Date(base.Year(), base.Month(), base.Day(),
			base.Hour(), base.Minute(), i%60, base.Nanosecond(), base.Location())

		recs = append(recs, record.Record{
			Timestamp: ts.Format(isoLayout),
			Level:     entry.level,
			Service:   "api-gateway",
			Host:      fmt.Sprintf("prod-server-%d", i%3+1),
			Message:   entry.message,
			Fields: map[string]any{
				"request_id": fmt.Sprintf("req_%d", 1000+i),
				"batch_id":   batchID,
			},
		})
	}
	return recs
}
