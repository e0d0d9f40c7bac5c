package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCommandExecutedIncrementsFamilyAndTotal(t *testing.T) {
	s := New("respd_test_cmd")
	s.CommandExecuted("string")
	s.CommandExecuted("string")
	s.CommandExecuted("set")

	assert.Equal(t, float64(2), testutil.ToFloat64(s.ReqCmd.WithLabelValues("string")))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.ReqCmd.WithLabelValues("set")))
	assert.Equal(t, float64(3), testutil.ToFloat64(s.TotalRequests.WithLabelValues()))
}

func TestConnLifecycle(t *testing.T) {
	s := New("respd_test_conn")
	s.ConnOpened()
	s.ConnOpened()
	assert.Equal(t, float64(2), testutil.ToFloat64(s.CurrConnections.WithLabelValues()))

	s.ConnClosed(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(s.CurrConnections.WithLabelValues()))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.ClientConnectionsClientEof.WithLabelValues()))

	s.ConnClosed(false)
	assert.Equal(t, float64(1), testutil.ToFloat64(s.ClientConnectionsClientErr.WithLabelValues()))
}
