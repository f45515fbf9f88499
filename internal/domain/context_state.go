package domain

// ContextPhase is the phase of the festival-detail context.
type ContextPhase string

const (
	ContextInactive ContextPhase = "inactive"
	ContextActive   ContextPhase = "active"
)

func (p ContextPhase) String() string {
	return string(p)
}

// ContextState is either inactive, or active on a single festival.
type ContextState struct {
	Phase     ContextPhase `json:"phase"`
	Festival  *Festival    `json:"festival,omitempty"`
	SessionID string       `json:"session_id,omitempty"`
}

func InactiveState() ContextState {
	return ContextState{Phase: ContextInactive}
}

func (s ContextState) IsActive() bool {
	return s.Phase == ContextActive
}
