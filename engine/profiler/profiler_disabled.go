//go:build !profile

// Package profiler records named scopes and reports their timings. Without
// the "profile" build tag every call is a no-op.
package profiler

import "time"

type Scope struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

func (s Scope) Mean() time.Duration { return 0 }

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Summary() []Scope { return nil }

func Report() {}
