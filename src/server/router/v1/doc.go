package v1

import (
	"io"
	"net/http"
	"strings"

	"github.com/emicklei/go-restful/v3"
)

const MIMEText = "text/plain"

var documentation = strings.Join([]string{
	"System Monitoring API",
	"",
	"GET /cpu    -> ProcessorInfo { name, physicalCores, logicalCores, maxFreqHz, usagePercentage }",
	"GET /ram    -> MemoryInfo { totalMb, availableMb, usedMb }",
	"GET /disk   -> DiskInfo[] { model, sizeGb }",
	"GET /gpu    -> GpuInfo[] { name, vramGb }",
	"GET /procs  -> ProcessesInfo { totalProcesses, processes[], uptimeSec }",
	"    ProcessInfo { name, pid, parentPid, state }",
	"GET /os     -> OsInfo { codeName, family, version }",
	"",
	"Content types: JSON for data endpoints, plain text for this documentation.",
}, "\n")

// Documentation GET /doc
func Documentation(req *restful.Request, resp *restful.Response) {
	resp.Header().Set("Content-Type", MIMEText+"; charset=utf-8")
	resp.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(resp, documentation)
}
