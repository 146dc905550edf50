//go:build js && wasm

// Command quiverbloom-wasm exposes frame generation to a web page.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o quiverbloom.wasm ./cmd/quiverbloom-wasm
//
// After the module starts, a global quiverbloom object provides:
//
//	createArray(size) -> handle
//	freeArray(handle, size)
//	numAlgorithms() -> count
//	width(id), height(id), numPoints(id)
//	framePoints(id, t, xHandle, yHandle, size)
//	copyArray(handle, float64Array) -> bytes copied
//
// Go memory cannot be viewed from JS directly, so copyArray transfers a
// buffer into a Float64Array owned by the page after each framePoints call.
package main

import (
	"syscall/js"
)

func main() {
	b := newBridge()

	exports := js.Global().Get("Object").New()
	exports.Set("createArray", js.FuncOf(func(_ js.Value, args []js.Value) any {
		return b.createArray(args[0].Int())
	}))
	exports.Set("freeArray", js.FuncOf(func(_ js.Value, args []js.Value) any {
		b.freeArray(args[0].Int(), args[1].Int())
		return nil
	}))
	exports.Set("numAlgorithms", js.FuncOf(func(_ js.Value, _ []js.Value) any {
		return b.numAlgorithms()
	}))
	exports.Set("width", js.FuncOf(func(_ js.Value, args []js.Value) any {
		return b.width(args[0].Int())
	}))
	exports.Set("height", js.FuncOf(func(_ js.Value, args []js.Value) any {
		return b.height(args[0].Int())
	}))
	exports.Set("numPoints", js.FuncOf(func(_ js.Value, args []js.Value) any {
		return b.numPoints(args[0].Int())
	}))
	exports.Set("framePoints", js.FuncOf(func(_ js.Value, args []js.Value) any {
		b.framePoints(args[0].Int(), args[1].Float(), args[2].Int(), args[3].Int(), args[4].Int())
		return nil
	}))
	exports.Set("copyArray", js.FuncOf(func(_ js.Value, args []js.Value) any {
		dst := args[1]
		view := js.Global().Get("Uint8Array").New(dst.Get("buffer"), dst.Get("byteOffset"), dst.Get("byteLength"))
		return js.CopyBytesToJS(view, b.arrayBytes(args[0].Int()))
	}))

	js.Global().Set(globalName, exports)

	// The exports stay valid only while main is running.
	select {}
}
