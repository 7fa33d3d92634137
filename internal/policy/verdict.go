package policy

// VerdictKind is the outcome category for one evaluated event.
type VerdictKind int

const (
	// NoOpinion means the hook stays silent and the agent applies its
	// default behavior.
	NoOpinion VerdictKind = iota
	// Deny blocks the tool invocation outright.
	Deny
	// Ask requests user confirmation before the invocation proceeds.
	Ask
)

// String returns a short name for the verdict kind.
func (k VerdictKind) String() string {
	switch k {
	case NoOpinion:
		return "no-opinion"
	case Deny:
		return "deny"
	case Ask:
		return "ask"
	}
	return "unknown"
}

// Verdict is the decision for one evaluated event. Message carries the
// denial message or the ask reason; it is empty for NoOpinion.
type Verdict struct {
	Kind    VerdictKind
	Message string
}
