package tracelog

import (
	"github.com/hdsim/reactree/collection"
	"github.com/hdsim/reactree/reaction"
)

// Snapshot is a deterministic description of one step's collected
// reactions: the three kinds in declaration order, each listing its
// reactions in dispatch order. Reaction ids are excluded so snapshots of
// separate runs compare equal; payloads are included verbatim and must be
// canonical-JSON-representable for MarshalCanonical to succeed.
type Snapshot struct {
	StepSeq int64
	Kinds   []KindSnapshot
}

// KindSnapshot lists one kind's reachable reactions.
type KindSnapshot struct {
	Kind      string
	Reactions []ReactionSnapshot
}

// ReactionSnapshot describes one collected reaction without its id.
type ReactionSnapshot struct {
	Trigger  string
	NodePath string
	Payload  any
}

// Snap captures the state of a composite set for step stepSeq.
func Snap(stepSeq int64, set collection.CompositeSet) *Snapshot {
	snap := &Snapshot{StepSeq: stepSeq}
	for _, kind := range reaction.Kinds() {
		ks := KindSnapshot{Kind: kind.String(), Reactions: []ReactionSnapshot{}}
		collection.Walk(set.ByKind(kind), func(path []int, r *reaction.Reaction) bool {
			ks.Reactions = append(ks.Reactions, ReactionSnapshot{
				Trigger:  r.Trigger().String(),
				NodePath: PathString(path),
				Payload:  r.Payload(),
			})
			return true
		})
		snap.Kinds = append(snap.Kinds, ks)
	}
	return snap
}

// MarshalCanonical serializes the snapshot as canonical JSON for golden
// file comparison. Nil payloads are omitted rather than written as null.
func (s *Snapshot) MarshalCanonical() ([]byte, error) {
	kinds := make([]any, len(s.Kinds))
	for i, ks := range s.Kinds {
		reactions := make([]any, len(ks.Reactions))
		for j, rs := range ks.Reactions {
			entry := map[string]any{
				"trigger":   rs.Trigger,
				"node_path": rs.NodePath,
			}
			if rs.Payload != nil {
				entry["payload"] = rs.Payload
			}
			reactions[j] = entry
		}
		kinds[i] = map[string]any{
			"kind":      ks.Kind,
			"reactions": reactions,
		}
	}
	return marshalCanonical(map[string]any{
		"step_seq": s.StepSeq,
		"kinds":    kinds,
	})
}
