//go:build windows

package monotime

import (
	"sync"
	"syscall"
	"time"
	"unsafe"
)

var (
	kernel32 = syscall.NewLazyDLL("kernel32.dll")
	qpc      = kernel32.NewProc("QueryPerformanceCounter")
	qpf      = kernel32.NewProc("QueryPerformanceFrequency")

	freqOnce sync.Once
	freq     uint64
)

// docs: https://docs.microsoft.com/en-us/windows/desktop/SysInfo/acquiring-high-resolution-time-stamps
func now() time.Duration {
	freqOnce.Do(func() {
		if ret, _, err := qpf.Call(uintptr(unsafe.Pointer(&freq))); ret == 0 {
			panic(err)
		}
	})
	var ctr uint64
	if ret, _, err := qpc.Call(uintptr(unsafe.Pointer(&ctr))); ret == 0 {
		panic(err)
	}
	return ticksToDuration(ctr, freq)
}
