package greeting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindDefault = "default"
	kindNamed   = "named"
)

var greetingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hello_greetings_total",
		Help: "Total number of greetings served, by kind",
	},
	[]string{"kind"},
)

func greetingKind(name string) string {
	if isNamed(name) {
		return kindNamed
	}
	return kindDefault
}
