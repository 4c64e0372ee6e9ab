package util

import (
	"os"
	"strings"
	"sync"

	"github.com/denisbrodbeck/machineid"
)

var (
	machineID      string
	machineIDMutex sync.Mutex
)

// GetMachineID returns a stable identifier for the current machine.
// Falls back to the motherboard serial on linux, then to empty.
// GetMachineID 获取当前机器的唯一标识符，失败时返回空字符串
func GetMachineID() string {
	machineIDMutex.Lock()
	defer machineIDMutex.Unlock()

	if machineID != "" {
		return machineID
	}

	if id, err := machineid.ID(); err == nil && id != "" {
		machineID = id
		return machineID
	}

	if content, err := os.ReadFile("/sys/class/dmi/id/board_serial"); err == nil {
		if id := strings.TrimSpace(string(content)); id != "" {
			machineID = id
			return machineID
		}
	}

	return ""
}
