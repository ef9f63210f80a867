// Package metrics exposes prometheus counters for the booking and
// attendance flows, served on /metrics when enabled.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsCreated counts confirmed bookings, labelled by entry type.
	BookingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubin_bookings_created_total",
		Help: "Number of bookings created, by entry type.",
	}, []string{"entry_type"})

	// CheckIns counts attendance check-ins.
	CheckIns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubin_attendance_checkins_total",
		Help: "Number of attendance check-ins.",
	})

	// CheckOuts counts attendance check-outs.
	CheckOuts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubin_attendance_checkouts_total",
		Help: "Number of attendance check-outs.",
	})
)
