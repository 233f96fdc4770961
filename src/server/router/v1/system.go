package v1

import (
	"net/http"

	"github.com/FilipAndrei2/system-monitoring-rest-api/src/models"
	"github.com/FilipAndrei2/system-monitoring-rest-api/src/snapshot"
	"github.com/emicklei/go-restful/v3"
	"k8s.io/klog/v2"
)

// RouteServer answers the snapshot routes. Every request reads the host again.
type RouteServer struct {
	mapper *snapshot.Mapper
}

func NewRouteServer(mapper *snapshot.Mapper) *RouteServer {
	return &RouteServer{mapper: mapper}
}

// SystemHandler registers the six snapshot routes and /doc.
func SystemHandler(rs *RouteServer) *restful.WebService {
	ws := new(restful.WebService)
	ws.Path("/").Produces(restful.MIME_JSON)
	ws.Route(ws.GET("/cpu").To(rs.Processor).
		Doc("processor identity and load sampled over 800ms").
		Operation("cpu").
		Writes(models.ProcessorInfo{}))
	ws.Route(ws.GET("/ram").To(rs.Memory).
		Doc("physical memory in whole GiB").
		Operation("ram").
		Writes(models.MemoryInfo{}))
	ws.Route(ws.GET("/disk").To(rs.Disks).
		Doc("disk stores").
		Operation("disk").
		Writes([]models.DiskInfo{}))
	ws.Route(ws.GET("/gpu").To(rs.GPUs).
		Doc("graphics cards").
		Operation("gpu").
		Writes([]models.GpuInfo{}))
	ws.Route(ws.GET("/procs").To(rs.Processes).
		Doc("process table and uptime").
		Operation("procs").
		Writes(models.ProcessesInfo{}))
	ws.Route(ws.GET("/os").To(rs.OS).
		Doc("operating system identity").
		Operation("os").
		Writes(models.OsInfo{}))
	ws.Route(ws.GET("/doc").To(Documentation).
		Doc("plain text route listing").
		Operation("doc").
		Produces(MIMEText))
	return ws
}

func (rs *RouteServer) Processor(req *restful.Request, resp *restful.Response) {
	info, err := rs.mapper.ProcessorInfo(req.Request.Context())
	writeSnapshot(req, resp, info, err)
}

func (rs *RouteServer) Memory(req *restful.Request, resp *restful.Response) {
	info, err := rs.mapper.MemoryInfo(req.Request.Context())
	writeSnapshot(req, resp, info, err)
}

func (rs *RouteServer) Disks(req *restful.Request, resp *restful.Response) {
	disks, err := rs.mapper.DiskInfo(req.Request.Context())
	writeSnapshot(req, resp, disks, err)
}

func (rs *RouteServer) GPUs(req *restful.Request, resp *restful.Response) {
	gpus, err := rs.mapper.GpuInfo(req.Request.Context())
	writeSnapshot(req, resp, gpus, err)
}

func (rs *RouteServer) Processes(req *restful.Request, resp *restful.Response) {
	info, err := rs.mapper.ProcessesInfo(req.Request.Context())
	writeSnapshot(req, resp, info, err)
}

func (rs *RouteServer) OS(req *restful.Request, resp *restful.Response) {
	info, err := rs.mapper.OsInfo(req.Request.Context())
	writeSnapshot(req, resp, info, err)
}

// writeSnapshot writes v as JSON, or a bare 500 when the host read failed.
func writeSnapshot(req *restful.Request, resp *restful.Response, v any, err error) {
	if err != nil {
		klog.Errorf("%s %s: %v", req.Request.Method, req.Request.URL.Path, err)
		_ = resp.WriteErrorString(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	if err := resp.WriteAsJson(v); err != nil {
		klog.Errorf("write %s response: %v", req.Request.URL.Path, err)
	}
}
