package workpool

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_Workers(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{4, 4},
		{1, 1},
		{0, runtime.GOMAXPROCS(0)},
		{-3, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		p := New(tt.in)
		if p.Workers() != tt.want {
			t.Errorf("New(%d).Workers() = %d, want %d", tt.in, p.Workers(), tt.want)
		}
		p.Close()
	}
}

func TestRun_AllTasks(t *testing.T) {
	p := New(4)
	defer p.Close()

	results := make([]int, 200)
	tasks := make([]func(), len(results))
	for i := range tasks {
		tasks[i] = func() { results[i] = i * 2 }
	}
	p.Run(tasks)

	for i, v := range results {
		if v != i*2 {
			t.Fatalf("results[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestRun_Empty(t *testing.T) {
	p := New(2)
	defer p.Close()
	p.Run(nil)
	p.Run([]func(){})
}

func TestRun_MoreTasksThanQueueDepth(t *testing.T) {
	p := New(1)
	defer p.Close()

	var n atomic.Int64
	tasks := make([]func(), 1000)
	for i := range tasks {
		tasks[i] = func() { n.Add(1) }
	}
	p.Run(tasks)
	if n.Load() != 1000 {
		t.Errorf("ran %d tasks, want 1000", n.Load())
	}
}

func TestRun_AfterClose(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()

	var ran atomic.Bool
	p.Run([]func(){func() { ran.Store(true) }})
	if !ran.Load() {
		t.Error("Run() on closed pool skipped the task")
	}
}

func TestRun_StealsFromBusyWorker(t *testing.T) {
	p := New(4)
	defer p.Close()

	// All slow tasks land on worker 0's queue; stealing spreads them.
	tasks := make([]func(), 8)
	for i := range tasks {
		tasks[i] = func() {
			if i%4 == 0 {
				time.Sleep(20 * time.Millisecond)
			}
		}
	}

	start := time.Now()
	p.Run(tasks)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Run() took %v", elapsed)
	}
}

func TestClose_NoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for range 5 {
		p := New(4)
		tasks := make([]func(), 50)
		for i := range tasks {
			tasks[i] = func() {}
		}
		p.Run(tasks)
		p.Close()
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	if final := runtime.NumGoroutine(); final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d", baseline, final)
	}
}
