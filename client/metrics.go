package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var credentialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "dressly_client",
		Name:      "credentials_total",
		Help:      "Outgoing requests by credential outcome (attached, absent, error).",
	},
	[]string{"outcome"},
)
