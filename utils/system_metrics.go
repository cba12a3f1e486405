package utils

import (
	"log"

	"github.com/shirou/gopsutil/v4/cpu"
)

// GetCPUUsage returns CPU utilization as a percentage since the previous
// call. The zero interval keeps the health endpoint from blocking on a
// sampling window; the first call after startup reports since boot.
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		log.Printf("warning: CPU usage unavailable: %v", err)
		return 0
	}
	if len(percentage) == 0 {
		return 0
	}
	return percentage[0]
}
