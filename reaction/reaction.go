package reaction

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies which handler ultimately processes a reaction.
type Kind int

const (
	// KindObservation marks reactions that observe state without changing it.
	KindObservation Kind = iota + 1
	// KindDiscreteUpdate marks reactions that may update discrete-valued state.
	KindDiscreteUpdate
	// KindUnrestrictedUpdate marks reactions that may update any part of the state.
	KindUnrestrictedUpdate
)

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObservation:
		return "observation"
	case KindDiscreteUpdate:
		return "discrete_update"
	case KindUnrestrictedUpdate:
		return "unrestricted_update"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the three defined kinds.
func (k Kind) Valid() bool {
	return k >= KindObservation && k <= KindUnrestrictedUpdate
}

// Kinds returns the three kinds in dispatch declaration order.
// The slice is freshly allocated on each call.
func Kinds() []Kind {
	return []Kind{KindObservation, KindDiscreteUpdate, KindUnrestrictedUpdate}
}

// Trigger classifies what caused a reaction to be generated.
type Trigger int

const (
	// TriggerScheduled marks reactions generated for a computed trigger time.
	TriggerScheduled Trigger = iota + 1
	// TriggerPerStep marks reactions generated on every simulation step.
	TriggerPerStep
	// TriggerForced marks synthetic reactions used to force an immediate,
	// argument-less handler invocation outside normal scheduling.
	TriggerForced
)

// String returns the canonical lower-case name of the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerScheduled:
		return "scheduled"
	case TriggerPerStep:
		return "per_step"
	case TriggerForced:
		return "forced"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// Reaction is one response of a fixed kind. Immutable after construction.
type Reaction struct {
	id      string
	kind    Kind
	trigger Trigger
	payload any
}

// New creates a reaction with a fresh UUIDv7 id.
// Panics if kind is not a defined Kind; this is a programming error.
func New(kind Kind, trigger Trigger, payload any) *Reaction {
	if !kind.Valid() {
		panic(fmt.Sprintf("reaction: invalid kind %d", int(kind)))
	}
	return &Reaction{
		id:      uuid.Must(uuid.NewV7()).String(),
		kind:    kind,
		trigger: trigger,
		payload: payload,
	}
}

// NewForced creates a forced reaction of the given kind with no payload.
func NewForced(kind Kind) *Reaction {
	return New(kind, TriggerForced, nil)
}

// ID returns the reaction's id. Clones share the id of their origin.
func (r *Reaction) ID() string { return r.id }

// Kind returns the reaction's kind.
func (r *Reaction) Kind() Kind { return r.kind }

// Trigger returns the reaction's trigger classification.
func (r *Reaction) Trigger() Trigger { return r.trigger }

// Payload returns the opaque payload, which may be nil.
func (r *Reaction) Payload() any { return r.payload }

// Clone returns an independent copy with the same id, kind, trigger and
// payload. The payload is opaque and therefore shared by reference.
func (r *Reaction) Clone() *Reaction {
	c := *r
	return &c
}
