package service

// MetricsRecorder receives business counters from the use cases.
type MetricsRecorder interface {
	ObserveAward(source string, amount int64, success bool)
	ObserveMilestone(key string)
	ObserveRoute(strategy string, stops int, distanceMeters float64)
}
