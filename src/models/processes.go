package models

// ProcessesInfo GET /procs
type ProcessesInfo struct {
	// TotalProcesses is read separately from Processes and may differ from its length
	TotalProcesses int           `json:"totalProcesses"`
	Processes      []ProcessInfo `json:"processes"`
	// UptimeSec time since last system boot
	UptimeSec uint64 `json:"uptimeSec"`
}

// ProcessInfo one entry of the process table
type ProcessInfo struct {
	Name      string `json:"name"`
	Pid       int32  `json:"pid"`
	ParentPid int32  `json:"parentPid"`
	State     string `json:"state"`
}
