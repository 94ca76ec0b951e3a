package service

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// compensator accumulates undo steps while a multi-write operation runs
// against a store with no transaction API. Each successful sub-write
// pushes its reverse operation; on failure the steps run in reverse
// order. A step that fails during rollback is logged with the operation
// id and skipped — the caller always receives the original error, never
// a compensation error, so the store can be left inconsistent if a
// rollback write fails.
type compensator struct {
	opID  string
	steps []undoStep
}

type undoStep struct {
	name string
	fn   func(ctx context.Context) error
}

func newCompensator(op string) *compensator {
	return &compensator{opID: op + "/" + uuid.NewString()}
}

func (c *compensator) push(name string, fn func(ctx context.Context) error) {
	c.steps = append(c.steps, undoStep{name: name, fn: fn})
}

// rollback executes the accumulated steps newest-first. Best effort: no
// retries, errors logged only.
func (c *compensator) rollback(ctx context.Context, cause error) {
	log.Warnf("operation %s failed, compensating %d steps: %v", c.opID, len(c.steps), cause)
	for i := len(c.steps) - 1; i >= 0; i-- {
		step := c.steps[i]
		if err := step.fn(ctx); err != nil {
			log.Errorf("compensation step %q for operation %s failed: %v", step.name, c.opID, err)
		}
	}
}
