package translator

import (
	"context"
	"fmt"

	gst "github.com/richinsley/goshadertranslator"
)

var shared *gst.ShaderTranslator

// Shared returns the process-wide shader translator, creating it on first
// use. Building the translator spins up its WASM runtime, so it is done once
// and reused for every translation.
func Shared() (*gst.ShaderTranslator, error) {
	if shared == nil {
		t, err := gst.NewShaderTranslator(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to create shader translator: %w", err)
		}
		shared = t
	}
	return shared, nil
}
