package normalizer

// Result is the outcome of normalization. Always best-effort: even empty
// input produces a Result, never an error.
type Result struct {
	Normalized string
	Applied    []string // labels of the modifications that fired, in order
}
