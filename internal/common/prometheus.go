package common

import "github.com/prometheus/client_golang/prometheus"

const (
	ReactionUnknownWireTagTotal = "reaction_unknown_wire_tag_total"
	ReactionWriteFailureTotal   = "reaction_write_failure_total"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		ReactionUnknownWireTagTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ReactionUnknownWireTagTotal,
			Help: "Count of wire constructors dropped because the parser does not know them",
		}, []string{"parser", "tag"}),
		ReactionWriteFailureTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ReactionWriteFailureTotal,
			Help: "Count of reaction types which could not be written to the wire",
		}, []string{"kind"}),
	}
)

// NewRegistry returns a registry holding every counter of this package.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	for _, counter := range PromCounters {
		registry.MustRegister(counter)
	}

	return registry
}
