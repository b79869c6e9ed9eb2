package tracelog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hdsim/reactree/collection"
	"github.com/hdsim/reactree/reaction"
)

// Record is one collected reaction as stored in the trace.
type Record struct {
	StepSeq     int64
	DispatchSeq int64
	Kind        string
	Trigger     string
	NodePath    string
	ReactionID  string
}

// RecordStep writes one step's merged composite set to the trace: a step
// row stamped with stepSeq, then one row per reachable reaction in
// dispatch order (kind by kind in declaration order, tree order within a
// kind). The whole step commits atomically. Fails if stepSeq was already
// recorded.
func (s *Store) RecordStep(ctx context.Context, stepSeq int64, set collection.CompositeSet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin step %d: %w", stepSeq, err)
	}
	defer tx.Rollback()

	recordedAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO steps (step_seq, recorded_at) VALUES (?, ?)`,
		stepSeq, recordedAt); err != nil {
		return fmt.Errorf("insert step %d: %w", stepSeq, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO reactions (step_seq, dispatch_seq, kind, trigger_type, node_path, reaction_id)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare reactions insert: %w", err)
	}
	defer stmt.Close()

	dispatchSeq := int64(0)
	var walkErr error
	for _, kind := range reaction.Kinds() {
		collection.Walk(set.ByKind(kind), func(path []int, r *reaction.Reaction) bool {
			_, walkErr = stmt.ExecContext(ctx, stepSeq, dispatchSeq,
				kind.String(), r.Trigger().String(), PathString(path), r.ID())
			if walkErr != nil {
				return false
			}
			dispatchSeq++
			return true
		})
		if walkErr != nil {
			return fmt.Errorf("insert reaction %d of step %d: %w", dispatchSeq, stepSeq, walkErr)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit step %d: %w", stepSeq, err)
	}
	return nil
}

// Steps returns every recorded step sequence number in ascending order.
func (s *Store) Steps(ctx context.Context) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT step_seq FROM steps ORDER BY step_seq`)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()

	var steps []int64
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		steps = append(steps, seq)
	}
	return steps, rows.Err()
}

// StepRecords returns the reactions recorded for one step, in dispatch
// order.
func (s *Store) StepRecords(ctx context.Context, stepSeq int64) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT step_seq, dispatch_seq, kind, trigger_type, node_path, reaction_id
		 FROM reactions WHERE step_seq = ? ORDER BY dispatch_seq`, stepSeq)
	if err != nil {
		return nil, fmt.Errorf("query step %d: %w", stepSeq, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.StepSeq, &r.DispatchSeq, &r.Kind, &r.Trigger, &r.NodePath, &r.ReactionID); err != nil {
			return nil, fmt.Errorf("scan reaction: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// PathString renders a tree path as a slash-separated string: "/" for the
// root collection itself, "/1/0" for child 0 of child 1.
func PathString(path []int) string {
	if len(path) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range path {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}
