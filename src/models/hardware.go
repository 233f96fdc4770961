package models

// ProcessorInfo GET /cpu
type ProcessorInfo struct {
	Name          string `json:"name"`
	PhysicalCores int    `json:"physicalCores"`
	LogicalCores  int    `json:"logicalCores"`
	// MaxFreqHz maximum frequency in Hz
	MaxFreqHz int64 `json:"maxFreqHz"`
	// UsagePercentage 0-100
	UsagePercentage float64 `json:"usagePercentage"`
}

// MemoryInfo GET /ram
// Values are whole GiB; the Mb suffix is the published field name.
type MemoryInfo struct {
	TotalMb     int64 `json:"totalMb"`
	AvailableMb int64 `json:"availableMb"`
	UsedMb      int64 `json:"usedMb"`
}

// DiskInfo GET /disk
type DiskInfo struct {
	Model  string `json:"model"`
	SizeGb int64  `json:"sizeGb"`
}

// GpuInfo GET /gpu
type GpuInfo struct {
	Name   string `json:"name"`
	VramGb int64  `json:"vramGb"`
}

// OsInfo GET /os
type OsInfo struct {
	CodeName string `json:"codeName"`
	Family   string `json:"family"`
	Version  string `json:"version"`
}
