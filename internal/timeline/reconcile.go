package timeline

import (
	"github.com/gridlog/gridlog/internal/domain"
)

// Reconcile merges cached records into a generated bucket grid. A record
// belongs to the bucket whose [Start, End) span contains the record's Start
// instant; matching is done on instants, never by re-deriving wall-clock
// fields, so DST and timezone shifts cannot move a record between buckets.
//
// When several records land in the same bucket (which correct writes never
// produce), the earliest Start wins, ties broken by smallest ID. The rule is
// deterministic on purpose rather than iteration-order dependent.
//
// The result always has the same length and ordering as buckets: one entry
// per 30-minute span, no gaps, no duplicates.
func Reconcile(buckets []domain.TimeBucket, records []*domain.TimeRecord) []domain.TimeBucket {
	out := make([]domain.TimeBucket, len(buckets))
	for i, bucket := range buckets {
		if match := matchRecord(bucket, records); match != nil {
			out[i] = domain.BucketFromRecord(match)
		} else {
			out[i] = bucket
		}
	}
	return out
}

func matchRecord(bucket domain.TimeBucket, records []*domain.TimeRecord) *domain.TimeRecord {
	var best *domain.TimeRecord
	for _, rec := range records {
		if rec == nil || !bucket.Contains(rec.Start) {
			continue
		}
		if best == nil || rec.Start.Before(best.Start) ||
			(rec.Start.Equal(best.Start) && rec.ID < best.ID) {
			best = rec
		}
	}
	return best
}
