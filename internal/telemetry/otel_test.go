package telemetry

import (
	"context"
	"testing"

	"github.com/luxe-next/internal/config"
)

func TestInitDisabledIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), config.TelemetryConfig{Enabled: false}, "test")
	if err != nil {
		t.Fatalf("disabled init should not fail: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown failed: %v", err)
	}
}

func TestSampleRatioBounds(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0.25: 0.25, 3: 1}
	for in, want := range cases {
		if got := sampleRatio(in); got != want {
			t.Fatalf("sample ratio %v want %v got %v", in, want, got)
		}
	}
	if got := ServiceName(config.TelemetryConfig{ServiceName: "  "}); got != defaultServiceName {
		t.Fatalf("blank service name want default got %s", got)
	}
}
