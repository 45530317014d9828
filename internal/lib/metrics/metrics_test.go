package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
)

func TestObserveMutation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveMutation("user", "create", nil)
	m.ObserveMutation("user", "create", nil)
	m.ObserveMutation("profile", "create", apperr.Conflict("dup"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("user", "create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("profile", "create", "conflict")))
}

func TestObserveCascadeSkipsEmptySteps(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCascade("posts", 3)
	m.ObserveCascade("profile", 0)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.cascade.WithLabelValues("posts")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.cascade))
}

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/api/v1/users", 200, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/users", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}
