// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package jaeger initializes an OTLP trace provider.
package jaeger

import (
	"context"
	"errors"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

var errNoURL = errors.New("URL is empty")

// NewProvider initializes Jaeger TraceProvider exporting over OTLP HTTP.
func NewProvider(ctx context.Context, svcName string, jaegerURL url.URL, instanceID string, fraction float64) (*tracesdk.TracerProvider, error) {
	if jaegerURL == (url.URL{}) {
		return nil, errNoURL
	}

	var client otlptrace.Client
	switch jaegerURL.Scheme {
	case "https":
		client = otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(jaegerURL.Host),
			otlptracehttp.WithURLPath(jaegerURL.Path),
		)
	default:
		client = otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(jaegerURL.Host),
			otlptracehttp.WithURLPath(jaegerURL.Path),
			otlptracehttp.WithInsecure(),
		)
	}

	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, err
	}

	attributes := []attribute.KeyValue{
		semconv.ServiceName(svcName),
		semconv.ServiceInstanceID(instanceID),
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(fraction))),
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attributes...)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
