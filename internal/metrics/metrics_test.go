package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInit_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}

func TestObserveGoalOperation(t *testing.T) {
	before := testutil.ToFloat64(GoalOperations.WithLabelValues("check_in", OutcomeNoop))

	ObserveGoalOperation("check_in", OutcomeNoop)
	ObserveGoalOperation("check_in", OutcomeNoop)

	after := testutil.ToFloat64(GoalOperations.WithLabelValues("check_in", OutcomeNoop))
	assert.InDelta(t, 2, after-before, 0.0001)
}
