//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"

	"toruslife/src/universe"
)

//Session keeps the universe owned by the page
//JavaScript is single threaded, so no locking is needed
type Session struct {
	u *universe.Universe
}

var errNotNumber = errors.New("argument is not a number")

var session = &Session{}

//New replaces the universe with a new one of the given size
func (s *Session) New(width, height int, blank bool) error {
	var (
		u   *universe.Universe
		err error
	)
	if blank {
		u, err = universe.NewBlank(width, height)
	} else {
		u, err = universe.New(width, height)
	}
	if err != nil {
		return err
	}
	s.u = u
	return nil
}

//Cells copies the current generation into a Uint8Array, 0 is dead and 1 is alive
//the copy is the only one made, Go memory is not handed to JavaScript
func (s *Session) Cells() js.Value {
	b := s.u.Bytes()
	dst := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(dst, b)
	return dst
}

//intArgs converts the first n arguments, rejecting anything that is not a number
func intArgs(args []js.Value, n int) ([]int, error) {
	if len(args) < n {
		return nil, fmt.Errorf("want %d arguments, got %d", n, len(args))
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		if args[i].Type() != js.TypeNumber {
			return nil, fmt.Errorf("%w: argument %d is %s", errNotNumber, i, args[i].Type())
		}
		out[i] = args[i].Int()
	}
	return out, nil
}

func jsError(err error) interface{} {
	return map[string]interface{}{"error": err.Error()}
}

//guard wraps the handler so calls before lifeNew report an error instead of panicking
func guard(minArgs int, fn func(args []js.Value) interface{}) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if session.u == nil {
			return map[string]interface{}{"error": "universe is not created, call lifeNew first"}
		}
		if len(args) < minArgs {
			return map[string]interface{}{"error": "not enough arguments"}
		}
		return fn(args)
	})
}

func newWrapper(this js.Value, args []js.Value) interface{} {
	w, h, blank := 64, 64, false
	if len(args) >= 2 {
		wh, err := intArgs(args, 2)
		if err != nil {
			return jsError(err)
		}
		w, h = wh[0], wh[1]
	}
	if len(args) >= 3 {
		blank = args[2].Truthy()
	}
	if err := session.New(w, h, blank); err != nil {
		return jsError(err)
	}
	return nil
}

func main() {
	c := make(chan struct{})

	js.Global().Set("lifeNew", js.FuncOf(newWrapper))
	js.Global().Set("lifeTick", guard(0, func(args []js.Value) interface{} {
		live, changed := session.u.Tick()
		return map[string]interface{}{"live": live, "changed": changed}
	}))
	js.Global().Set("lifeToggleCell", guard(2, func(args []js.Value) interface{} {
		rc, err := intArgs(args, 2)
		if err != nil {
			return jsError(err)
		}
		if err := session.u.ToggleCell(rc[0], rc[1]); err != nil {
			return jsError(err)
		}
		return nil
	}))
	js.Global().Set("lifeRandomize", guard(0, func(args []js.Value) interface{} {
		session.u.Randomize(nil)
		return nil
	}))
	js.Global().Set("lifeClear", guard(0, func(args []js.Value) interface{} {
		session.u.Clear()
		return nil
	}))
	js.Global().Set("lifeWidth", guard(0, func(args []js.Value) interface{} {
		return session.u.Width()
	}))
	js.Global().Set("lifeHeight", guard(0, func(args []js.Value) interface{} {
		return session.u.Height()
	}))
	js.Global().Set("lifeIndex", guard(2, func(args []js.Value) interface{} {
		rc, err := intArgs(args, 2)
		if err != nil {
			return jsError(err)
		}
		idx, err := session.u.Index(rc[0], rc[1])
		if err != nil {
			return jsError(err)
		}
		return idx
	}))
	js.Global().Set("lifeCells", guard(0, func(args []js.Value) interface{} {
		return session.Cells()
	}))
	js.Global().Set("lifeRender", guard(0, func(args []js.Value) interface{} {
		return session.u.String()
	}))

	println("Go WebAssembly game of life initialized")
	<-c
}
