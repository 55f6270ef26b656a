package engine

// EnforceRequest represents a write-intent to evaluate.
type EnforceRequest struct {
	// FilePath is the target of the write. Empty means nothing to evaluate.
	FilePath string
}

// DecisionKind is the verdict of an enforcement check.
type DecisionKind string

const (
	// DecisionAllow permits the write.
	DecisionAllow DecisionKind = "allow"

	// DecisionBlock vetoes the write.
	DecisionBlock DecisionKind = "block"
)

// Decision is the engine's verdict for one write-intent.
type Decision struct {
	// Decision is the verdict
	Decision DecisionKind

	// Reason explains a block; empty for allows
	Reason string
}

// Allow returns an allowing decision.
func Allow() *Decision {
	return &Decision{Decision: DecisionAllow}
}

// Block returns a blocking decision with the given reason.
func Block(reason string) *Decision {
	return &Decision{Decision: DecisionBlock, Reason: reason}
}

// Allowed reports whether the decision permits the write.
func (d *Decision) Allowed() bool {
	return d.Decision == DecisionAllow
}
