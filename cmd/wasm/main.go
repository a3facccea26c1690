//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/slateboard/slateboard/backend-go/internal/canvas"
	"github.com/slateboard/slateboard/backend-go/internal/document"
	"github.com/slateboard/slateboard/backend-go/internal/ink"
)

// The wasm build exposes the stroke pipeline to the frontend so recognition
// and smoothing can run locally on every pen-up. The server runs the same
// code for collaborative boards.
func main() {
	slateboardInk := js.Global().Get("Object").New()

	slateboardInk.Set("recognizeShape", js.FuncOf(recognizeShape))
	slateboardInk.Set("findCorners", js.FuncOf(findCorners))
	slateboardInk.Set("smoothPath", js.FuncOf(smoothPath))
	slateboardInk.Set("processStroke", js.FuncOf(processStroke))

	// Register on global scope
	js.Global().Set("slateboardInk", slateboardInk)

	// Signal that WASM is ready
	js.Global().Set("slateboardWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

func parsePoints(arg js.Value) ([]ink.Point, error) {
	var points []ink.Point
	if err := json.Unmarshal([]byte(arg.String()), &points); err != nil {
		return nil, err
	}
	return points, nil
}

// recognizeShape takes a JSON array of points and returns the recognized
// shape as JSON, or null when the stroke stays freehand.
func recognizeShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing points JSON")
	}

	points, err := parsePoints(args[0])
	if err != nil {
		return errResult("invalid points: " + err.Error())
	}

	shape := ink.RecognizeShape(points)
	if shape.Kind == ink.ShapeNone {
		return js.Null()
	}

	out, err := json.Marshal(shape)
	if err != nil {
		return errResult(err.Error())
	}
	return js.ValueOf(string(out))
}

func findCorners(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing points JSON")
	}

	points, err := parsePoints(args[0])
	if err != nil {
		return errResult("invalid points: " + err.Error())
	}

	out, err := json.Marshal(ink.FindCorners(points))
	if err != nil {
		return errResult(err.Error())
	}
	return js.ValueOf(string(out))
}

func smoothPath(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing points JSON")
	}

	points, err := parsePoints(args[0])
	if err != nil {
		return errResult("invalid points: " + err.Error())
	}

	out, err := json.Marshal(ink.SmoothPath(points))
	if err != nil {
		return errResult(err.Error())
	}
	return js.ValueOf(string(out))
}

// processStroke runs the full pen-up pipeline and returns the resulting
// board element as JSON. Optional second and third arguments carry the
// board settings and the stroke style as JSON.
func processStroke(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing points JSON")
	}

	points, err := parsePoints(args[0])
	if err != nil {
		return errResult("invalid points: " + err.Error())
	}

	settings := document.Settings{ShapeRecognition: true, SmoothDrawing: true}
	if len(args) > 1 && args[1].Type() == js.TypeString {
		if err := json.Unmarshal([]byte(args[1].String()), &settings); err != nil {
			return errResult("invalid settings: " + err.Error())
		}
	}

	style := document.DefaultStyle()
	if len(args) > 2 && args[2].Type() == js.TypeString {
		if err := json.Unmarshal([]byte(args[2].String()), &style); err != nil {
			return errResult("invalid style: " + err.Error())
		}
		normalized, err := canvas.NormalizeStyle(style)
		if err != nil {
			return errResult("invalid style: " + err.Error())
		}
		style = normalized
	}

	el := canvas.ProcessStroke(points, settings, style)

	out, err := json.Marshal(el)
	if err != nil {
		return errResult(err.Error())
	}
	return js.ValueOf(string(out))
}
