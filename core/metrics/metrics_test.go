package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister_Twice(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.NoError(t, Register(reg))
	assert.NoError(t, Register(reg))
}

func TestObserveFunction(t *testing.T) {
	before := testutil.ToFloat64(FunctionExecutions.WithLabelValues("mysql", "DBSize", OutcomeOK))
	ObserveFunction("mysql", "DBSize", OutcomeOK, 5*time.Millisecond)
	after := testutil.ToFloat64(FunctionExecutions.WithLabelValues("mysql", "DBSize", OutcomeOK))
	assert.Equal(t, before+1, after)
}

func TestObserveScript(t *testing.T) {
	before := testutil.ToFloat64(ScriptsExecuted.WithLabelValues("mysql", "failed"))
	ObserveScript("mysql", false)
	assert.Equal(t, before+1, testutil.ToFloat64(ScriptsExecuted.WithLabelValues("mysql", "failed")))
}
