package lib

import "strconv"

// HistogramInt64 bucketed histogram of int64 samples. Samples below
// `from` fall into the left outlier bucket, samples at or above
// `till` into the right outlier bucket.
type HistogramInt64 struct {
	AverageInt64
	buckets []int64
	from    int64
	till    int64
	width   int64
}

// NewhistogramInt64 return a histogram for samples between from and
// till, counted in buckets of width.
func NewhistogramInt64(from, till, width int64) *HistogramInt64 {
	from, till = (from/width)*width, (till/width)*width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.buckets = make([]int64, ((till-from)/width)+2)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.AverageInt64.Add(sample)
	if sample < h.from {
		h.buckets[0]++
	} else if sample >= h.till {
		h.buckets[len(h.buckets)-1]++
	} else {
		h.buckets[((sample-h.from)/h.width)+1]++
	}
}

// Fullstats return mean and variance along with non-empty buckets,
// keyed by the bucket's lower bound.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	histogram := make(map[string]interface{})
	for i, count := range h.buckets {
		if count == 0 {
			continue
		}
		switch i {
		case 0:
			histogram["-"] = count
		case len(h.buckets) - 1:
			histogram["+"] = count
		default:
			key := strconv.Itoa(int(h.from + int64(i-1)*h.width))
			histogram[key] = count
		}
	}
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"stddeviance": h.SD(),
		"histogram":   histogram,
	}
}
