package router

import (
	"time"

	"github.com/FilipAndrei2/system-monitoring-rest-api/src/metrics"
	v1 "github.com/FilipAndrei2/system-monitoring-rest-api/src/server/router/v1"
	"github.com/emicklei/go-restful/v3"
	"k8s.io/klog/v2"
)

type Server struct {
	RestfulCont *restful.Container
}

// NewServer initializes and configures a restful container serving the
// snapshot routes plus /healthz and /metrics.
func NewServer(routes *v1.RouteServer, handler *metrics.Handler) Server {
	server := Server{
		RestfulCont: restful.NewContainer(),
	}
	server.RestfulCont.Filter(logRequest)
	server.RestfulCont.Filter(handler.Filter)

	server.RestfulCont.Add(v1.SystemHandler(routes))
	server.RestfulCont.Add(v1.MetricsHandler(handler))
	server.RestfulCont.Add(DefaultHandlers())
	return server
}

// DefaultHandlers registers the default set of supported HTTP request
// patterns with the restful Container.
func DefaultHandlers() *restful.WebService {
	ws := new(restful.WebService)
	ws.Path("/healthz")
	ws.Route(
		ws.GET("").To(v1.Health).
			Doc("health check").
			Operation("health"))
	return ws
}

func logRequest(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)
	klog.V(2).Infof("%s %s %d %s", req.Request.Method, req.Request.URL.Path, resp.StatusCode(), time.Since(start))
}
