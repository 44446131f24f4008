package otellib

import (
	"context"
	"fmt"
	"time"

	"github.com/QuangTung97/reva-click/config"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"google.golang.org/grpc"
)

// InitOtel creates the tracer provider, exporting to jaeger when url is configured
func InitOtel(serviceName string, conf config.JaegerConfig) (*sdktrace.TracerProvider, func()) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		attribute.String("environment", conf.Environment),
	)

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	if conf.URL != "" {
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(conf.URL)))
		if err != nil {
			panic(err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	return tp, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tp.Shutdown(ctx); err != nil {
			fmt.Println("[ERROR] shutdown tracer provider:", err)
		}
	}
}

// UnaryServerInterceptor ...
func UnaryServerInterceptor(tp *sdktrace.TracerProvider) grpc.UnaryServerInterceptor {
	return otelgrpc.UnaryServerInterceptor(otelgrpc.WithTracerProvider(tp))
}

// UnaryClientInterceptor ...
func UnaryClientInterceptor(tp *sdktrace.TracerProvider) grpc.UnaryClientInterceptor {
	return otelgrpc.UnaryClientInterceptor(otelgrpc.WithTracerProvider(tp))
}
