//go:build gpu

package main

// Building with -tags gpu routes circle and path fills through the gg GPU
// accelerator. Rendering falls back to the CPU when no adapter is found.
import _ "github.com/gogpu/gg/gpu"
