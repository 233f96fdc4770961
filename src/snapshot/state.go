package snapshot

import "github.com/FilipAndrei2/system-monitoring-rest-api/src/sysinfo"

// Published process state names.
const (
	StateRunning  = "RUNNING"
	StateSleeping = "SLEEPING"
	StateWaiting  = "WAITING"
	StateStopped  = "STOPPED"
	StateZombie   = "ZOMBIE"
	StateOther    = "OTHER"
)

// StateName maps a provider process state to its published name.
func StateName(s sysinfo.ProcessState) string {
	switch s {
	case sysinfo.StateRunning:
		return StateRunning
	case sysinfo.StateSleep:
		return StateSleeping
	case sysinfo.StateBlocked, sysinfo.StateWait, sysinfo.StateLock:
		return StateWaiting
	case sysinfo.StateStop:
		return StateStopped
	case sysinfo.StateZombie:
		return StateZombie
	default:
		return StateOther
	}
}
