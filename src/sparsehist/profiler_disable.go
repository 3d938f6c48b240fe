//go:build !profile
// +build !profile

package sparsehist

var PROFILER_ENABLED = false

type NoProfile struct{}

func (p NoProfile) Start() ProfilerStart {
	return NoProfile{}
}

func (p NoProfile) Stop() {
}

var STOP_PROFILER = func() {
}

var RUN_PROFILER = func() ProfilerStop {
	return NoProfile{}
}
