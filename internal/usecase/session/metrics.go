package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_session_logins_total",
		Help: "Number of successful logins.",
	})

	logoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_session_logouts_total",
		Help: "Number of explicit logouts.",
	})

	expirationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_session_expirations_total",
		Help: "Number of sessions torn down by the expiry timer.",
	})
)
