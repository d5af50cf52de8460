package main

import (
	"listening-show/biz/infrastructure/util/log"
	"listening-show/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/monitor-prometheus"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
)

func main() {
	provider.Init()
	c := provider.Get().Config

	tracer, cfg := tracing.NewServerTracer()
	h := server.Default(
		tracer,
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(c.Metrics.Addr, c.Metrics.Path)),
	)
	h.Use(tracing.ServerMiddleware(cfg))

	customizedRegister(h)
	log.Info("listening-show start, listen on %s", c.ListenOn)
	h.Spin()
}
