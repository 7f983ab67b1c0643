package main

import (
	"context"
	"learning-market/biz/infrastructure/util/log"
	"learning-market/provider"
	"time"

	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	metricsAddr  = ":9091"
	metricsPath  = "/metrics"
	exitWaitTime = 5 * time.Second
)

func main() {
	provider.Init()
	c := provider.Get().Config

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		b3.New(), propagation.TraceContext{}, propagation.Baggage{},
	))
	tracer, cfg := tracing.NewServerTracer()

	h := server.New(
		server.WithHostPorts(c.ListenOn),
		server.WithExitWaitTime(exitWaitTime),
		server.WithTracer(prometheus.NewServerTracer(metricsAddr, metricsPath)),
		tracer,
	)
	h.Use(recovery.Recovery(), tracing.ServerMiddleware(cfg), cors.Default())
	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		log.Info("learning-market shutting down")
		_ = logx.Close()
	})

	register(h)
	log.Info("learning-market listening on %s", c.ListenOn)
	h.Spin()
}
