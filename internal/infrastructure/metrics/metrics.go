package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values of the general counter.
const (
	AppRequests          = "app_requests_total"
	LoginSucceeded       = "login_succeeded_total"
	LoginFailed          = "login_failed_total"
	UserCreated          = "user_created_total"
	UserRegistered       = "user_registered_total"
	UserUpdated          = "user_updated_total"
	UserDeactivated      = "user_deactivated_total"
	ActivityRecorded     = "activity_recorded_total"
	ActivityRecordFailed = "activity_record_failed_total"
	EventsDropped        = "events_dropped_total"
)

func NewCounter() *prometheus.CounterVec {
	return NewCounterWith(prometheus.DefaultRegisterer)
}

// NewCounterWith registers on reg; tests pass a fresh registry.
func NewCounterWith(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tiendaadmin",
			Name:      "general_counters",
		},
		[]string{"result"})
}
