package lib

import "math"

// AverageInt64 accumulate samples and compute statistical mean,
// variance and standard-deviation.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	init   bool
}

// Add a sample.
func (av *AverageInt64) Add(sample int64) {
	av.n++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
	if av.init == false || sample < av.minval {
		av.minval = sample
		av.init = true
	}
	if av.maxval < sample {
		av.maxval = sample
	}
}

// Samples return total number of samples accumulated.
func (av *AverageInt64) Samples() int64 {
	return av.n
}

// Min return the smallest sample.
func (av *AverageInt64) Min() int64 {
	return av.minval
}

// Max return the largest sample.
func (av *AverageInt64) Max() int64 {
	return av.maxval
}

// Mean return the average of accumulated samples.
func (av *AverageInt64) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

// Variance return the squared deviation from the mean.
func (av *AverageInt64) Variance() float64 {
	if av.n == 0 {
		return 0
	}
	nf, meanf := float64(av.n), float64(av.Mean())
	return (av.sumsq / nf) - (meanf * meanf)
}

// SD return the standard-deviation of accumulated samples.
func (av *AverageInt64) SD() float64 {
	if av.n == 0 {
		return 0
	}
	return math.Sqrt(av.Variance())
}

// Stats return {samples,min,max,mean} as a map for logging.
func (av *AverageInt64) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples": av.Samples(),
		"min":     av.Min(),
		"max":     av.Max(),
		"mean":    av.Mean(),
	}
}
