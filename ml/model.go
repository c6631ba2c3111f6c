package ml

// Model is the read-only handle to the externally trained classifier. It is
// loaded once at startup and shared across requests; implementations must be
// safe for concurrent use.
type Model interface {
	Predict(features []float64) (class int, probability float64, err error)
	Close() error
}
