package v1

import (
	"io"
	"net/http"

	"github.com/FilipAndrei2/system-monitoring-rest-api/src/metrics"
	"github.com/emicklei/go-restful/v3"
)

func MetricsHandler(handler *metrics.Handler) *restful.WebService {
	ws := new(restful.WebService)
	ws.Path("/metrics")
	ws.Route(ws.GET("").
		To(handler.Metrics).
		Doc("prometheus metrics of this process").
		Operation("metrics"))
	return ws
}

// Health GET /healthz
func Health(req *restful.Request, resp *restful.Response) {
	resp.Header().Set("Content-Type", MIMEText+"; charset=utf-8")
	resp.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(resp, "ok")
}
