// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package fuzzutil

import "math/rand"

// A Step is one mutation of the system under fuzz, built from consumed
// bytes and applied in sequence.
type Step interface {
	DoStep()
}

// A TestRun turns a fuzzer byte slice into a sequence of steps via a
// caller supplied step maker, runs them in order and then cleans up.
type TestRun struct {
	steps   []Step
	cleanup func()
}

func NewTestRun(bytes []byte, stepMaker func(*ByteConsumer) Step, cleanup func()) *TestRun {
	tr := &TestRun{
		cleanup: cleanup,
	}

	byteConsumer := NewByteConsumer(bytes)
	for byteConsumer.Len() > 0 {
		tr.steps = append(tr.steps, stepMaker(byteConsumer))
	}
	return tr
}

func (t *TestRun) Run() {
	defer t.cleanup()
	for _, step := range t.steps {
		step.DoStep()
	}
}

// Seed cases for the fuzz corpus, fixed seed so the corpus is stable
func MakeRandomTestCases() [][]byte {
	r := rand.New(rand.NewSource(1))

	cases := [][]byte{{}}
	for _, size := range []int{1, 10, 50, 100, 500, 1000, 5000, 10000, 50000} {
		bytes := make([]byte, size)
		r.Read(bytes)
		cases = append(cases, bytes)
	}
	return cases
}
