package progress

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	log "github.com/visionmedia/go-cli-log"

	"saltcrackr/engine"
)

// Usage is a snapshot of host load while cracking
type Usage struct {
	CPUPercent    float64
	MemoryPercent float64
	HeapMB        uint64
}

// Sample reads CPU load since the previous sample, system memory use and the process heap
func Sample() (Usage, error) {
	var u Usage

	percents, err := cpu.Percent(0, false)
	if err != nil {
		return u, err
	}
	if len(percents) > 0 {
		u.CPUPercent = percents[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return u, err
	}
	u.MemoryPercent = vm.UsedPercent

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	u.HeapMB = m.Alloc / 1024 / 1024

	return u, nil
}

// Resources logs host usage each time a target finishes
type Resources struct{}

func NewResources() *Resources {
	// Prime the CPU counters so the first Done reports load over the first search
	_, _ = cpu.Percent(0, false)
	return &Resources{}
}

func (*Resources) Progress(engine.Event) {}

func (*Resources) Done(r engine.Result) {
	u, err := Sample()
	if err != nil {
		log.Error(err)
		return
	}

	log.Info("resources", "%s: cpu %.1f%%, memory %.1f%%, heap %d MB",
		r.Target.Label(), u.CPUPercent, u.MemoryPercent, u.HeapMB)
}
