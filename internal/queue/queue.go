// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queue provides an in-memory task queue that runs
// tasks on a bounded number of goroutines.
package queue

import (
	"context"
	"sync"
)

// A Task is a unit of work.
type Task interface {
	Name() string // Human-readable string for the task. Need not be unique.
}

// InMemory is a queue that schedules in-process tasks.
// It does not retry tasks on failure.
type InMemory struct {
	queue chan Task
	done  chan struct{}

	mu   sync.Mutex
	errs []error
}

// NewInMemory creates a new InMemory that asynchronously schedules
// tasks and executes processFunc on them. It uses workerCount parallelism
// to accomplish this. Once ctx is done, tasks not yet started are dropped.
func NewInMemory(ctx context.Context, workerCount int, processFunc func(context.Context, Task) error) *InMemory {
	if workerCount < 1 {
		workerCount = 1
	}
	q := &InMemory{
		queue: make(chan Task, workerCount),
		done:  make(chan struct{}),
	}
	var wg sync.WaitGroup
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range q.queue {
				if ctx.Err() != nil {
					q.addError(ctx.Err())
					continue
				}
				if err := processFunc(ctx, t); err != nil {
					q.addError(err)
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(q.done)
	}()
	return q
}

func (q *InMemory) addError(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.errs = append(q.errs, err)
}

// Enqueue adds a task to the queue, waiting for room if needed.
// It must not be called after [InMemory.Wait].
func (q *InMemory) Enqueue(task Task) {
	q.queue <- task
}

// Wait waits for all queued tasks to finish.
func (q *InMemory) Wait() {
	close(q.queue)
	<-q.done
}

// Errors returns the errors of the failed tasks,
// in the order they failed.
func (q *InMemory) Errors() []error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]error(nil), q.errs...)
}
