package amq

import "time"

// Result is the aggregate record of one benchmark run, serialized as
// the program's output.  Durations are wall-clock nanoseconds.
type Result struct {
	PositiveKeys           int           `json:"positive_keys"`
	NegativeKeys           int           `json:"negative_keys"`
	SerializedSize         int           `json:"serialized_size"`
	FalsePositiveCount     int           `json:"false_positive_count"`
	FalseNegativeCount     int           `json:"false_negative_count"`
	PositivesQueryDuration time.Duration `json:"positives_query_duration"`
	NegativesQueryDuration time.Duration `json:"negatives_query_duration"`
}

// FalsePositiveRate is the observed rate over the negative set.
func (r Result) FalsePositiveRate() float64 {
	if r.NegativeKeys == 0 {
		return 0
	}
	return float64(r.FalsePositiveCount) / float64(r.NegativeKeys)
}

// Run queries filter with both halves of the split key set, timing each
// query.  A false result on a positive key counts as a false negative
// (zero for a correct backend); a true result on a negative key counts
// as a false positive.  One pass over each set, in input order, no
// retries.  Counts are deterministic for a fixed structure and key set;
// timings are not.
func Run(keys *SplitKeys, filter Filter) Result {
	result := Result{
		PositiveKeys:   len(keys.Positives),
		NegativeKeys:   len(keys.Negatives),
		SerializedSize: filter.SizeInBytes(),
	}

	for _, key := range keys.Positives {
		start := time.Now()
		present := filter.Contains(key)
		result.PositivesQueryDuration += time.Since(start)
		if !present {
			result.FalseNegativeCount++
		}
	}

	for _, key := range keys.Negatives {
		start := time.Now()
		present := filter.Contains(key)
		result.NegativesQueryDuration += time.Since(start)
		if present {
			result.FalsePositiveCount++
		}
	}

	return result
}
