// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package workers

import (
	"testing"
)

// countWorker is a test implementation of the Worker interface that tracks
// how many times Run was called.
type countWorker struct {
	runCount int
}

func (m *countWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countWorker{}
	w2 := &countWorker{}
	w3 := &countWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*countWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestNewWorkers_SkipsNil(t *testing.T) {
	w := &countWorker{}

	// Disabled jobs come through as nil and must not panic Run.
	ws := NewWorkers(nil, w, nil)
	ws.Run()

	if w.runCount != 1 {
		t.Errorf("expected runCount=1, got %d", w.runCount)
	}
	if len(ws.workers) != 1 {
		t.Errorf("expected 1 worker kept, got %d", len(ws.workers))
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on an empty workers list
	NewWorkers().Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}
