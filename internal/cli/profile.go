package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5
)

type profiler struct {
	cpuProfileFile *os.File

	memDumpPath string
	heapDumps   [][]byte
	memMu       sync.Mutex
	stopMem     chan struct{}
	memStopped  chan struct{}

	stopOnce sync.Once
	stopErr  error
}

func startProfiler(cpuProfile, memProfileDir string) (*profiler, error) {
	p := &profiler{memDumpPath: memProfileDir}

	if cpuProfile != "" {
		cpuProfileFile, err := os.Create(cpuProfile)
		if err != nil {
			return nil, err
		}
		if err = pprof.StartCPUProfile(cpuProfileFile); err != nil {
			cpuProfileFile.Close()
			return nil, fmt.Errorf("starting CPU profiler: %w", err)
		}
		p.cpuProfileFile = cpuProfileFile
	}

	if memProfileDir != "" && MemorySampleRate > 0 {
		p.stopMem = make(chan struct{})
		p.memStopped = make(chan struct{})
		go p.sampleMemory(time.Duration((1 / MemorySampleRate) * float64(time.Second)))
	}
	return p, nil
}

func (p *profiler) sampleMemory(interval time.Duration) {
	defer close(p.memStopped)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopMem:
			return
		case <-ticker.C:
			p.dumpMemoryProfile()
		}
	}
}

func (p *profiler) dumpMemoryProfile() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		return
	}
	p.memMu.Lock()
	p.heapDumps = append(p.heapDumps, w.Bytes())
	p.memMu.Unlock()
}

// Stop flushes the CPU profile and writes every memory dump taken, plus a final one. Only the first call does
// anything.
func (p *profiler) Stop() error {
	p.stopOnce.Do(func() {
		var errs []error
		if p.cpuProfileFile != nil {
			pprof.StopCPUProfile()
			errs = append(errs, p.cpuProfileFile.Close())
		}

		if p.stopMem != nil {
			close(p.stopMem)
			<-p.memStopped
			p.dumpMemoryProfile()
			errs = append(errs, p.writeMemoryProfiles())
		}
		p.stopErr = errors.Join(errs...)
	})
	return p.stopErr
}

func (p *profiler) writeMemoryProfiles() error {
	if err := os.MkdirAll(p.memDumpPath, 0755); err != nil {
		return err
	}
	for dIdx, dump := range p.heapDumps {
		err := os.WriteFile(filepath.Join(p.memDumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0644)
		if err != nil {
			return fmt.Errorf("writing memory profile %d: %w", dIdx, err)
		}
	}
	return nil
}
