package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	"github.com/go-theft-auto/overlay"
)

// LoadLayout reads a layout or color table from a TOML file into out,
// which must be a pointer to a struct or map.
//
// String values are resolved before decoding. A string naming a
// top-level key, or one of vars, is replaced by that value. A string
// with arithmetic in it is evaluated over the numeric top-level keys
// and vars, so "WIDTH / 2 - margin" works when WIDTH is injected and
// margin is a number in the file. Anything else stays a string.
//
// Fields tagged with toml names decode as usual; in addition a uint32
// field accepts an [r, g, b] or [r, g, b, a] array, an overlay.Vec2 an
// [x, y] array, an overlay.Rect an [x, y, w, h] array, and an
// overlay.Align a name such as "TL" or "center".
func LoadLayout(path string, vars map[string]float64, out any, opts ...Option) error {
	c := newLoader(opts)

	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return fmt.Errorf("parse layout %s: %w", path, err)
	}

	r := resolver{top: raw, vars: vars, log: c.log}
	resolved := r.value(raw)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.DecodeHookFuncType(colorHook),
			mapstructure.DecodeHookFuncType(vecHook),
			mapstructure.DecodeHookFuncType(rectHook),
			mapstructure.DecodeHookFuncType(alignHook),
		),
		WeaklyTypedInput: true,
		TagName:          "toml",
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("layout decoder: %w", err)
	}
	if err := dec.Decode(resolved); err != nil {
		return fmt.Errorf("decode layout %s: %w", path, err)
	}
	return nil
}

type resolver struct {
	top  map[string]any
	vars map[string]float64
	log  *slog.Logger
}

func (r resolver) lookup(name string) (float64, bool) {
	if v, ok := r.vars[name]; ok {
		return v, true
	}
	switch v := r.top[name].(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func (r resolver) value(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = r.value(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = r.value(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = r.value(e)
		}
		return out
	case string:
		return r.text(t)
	}
	return v
}

func (r resolver) text(s string) any {
	key := strings.TrimSpace(s)
	if v, ok := r.top[key]; ok {
		return v
	}
	if v, ok := r.vars[key]; ok {
		return v
	}
	if !strings.ContainsAny(s, "+-*/") {
		return s
	}
	v, err := Eval(s, r.lookup)
	if err != nil {
		r.log.Debug("layout string kept", "value", s, "err", err)
		return s
	}
	return v
}

var (
	colorType = reflect.TypeOf(uint32(0))
	vecType   = reflect.TypeOf(overlay.Vec2{})
	rectType  = reflect.TypeOf(overlay.Rect{})
	alignType = reflect.TypeOf(overlay.Align(0))
)

func floats(data any, n ...int) ([]float32, bool) {
	items, ok := data.([]any)
	if !ok {
		return nil, false
	}
	match := false
	for _, want := range n {
		match = match || len(items) == want
	}
	if !match {
		return nil, false
	}
	out := make([]float32, len(items))
	for i, it := range items {
		f, err := cast.ToFloat32E(it)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func colorHook(from, to reflect.Type, data any) (any, error) {
	if to != colorType || from.Kind() != reflect.Slice {
		return data, nil
	}
	c, ok := floats(data, 3, 4)
	if !ok {
		return nil, fmt.Errorf("color %v: want [r, g, b] or [r, g, b, a]", data)
	}
	a := float32(255)
	if len(c) == 4 {
		a = c[3]
	}
	return overlay.RGBA(channel(c[0]), channel(c[1]), channel(c[2]), channel(a)), nil
}

func channel(v float32) uint8 {
	return uint8(min(max(v, 0), 255))
}

func vecHook(from, to reflect.Type, data any) (any, error) {
	if to != vecType || from.Kind() != reflect.Slice {
		return data, nil
	}
	v, ok := floats(data, 2)
	if !ok {
		return nil, fmt.Errorf("vector %v: want [x, y]", data)
	}
	return overlay.Vec2{X: v[0], Y: v[1]}, nil
}

func rectHook(from, to reflect.Type, data any) (any, error) {
	if to != rectType || from.Kind() != reflect.Slice {
		return data, nil
	}
	v, ok := floats(data, 4)
	if !ok {
		return nil, fmt.Errorf("rect %v: want [x, y, w, h]", data)
	}
	return overlay.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}

func alignHook(from, to reflect.Type, data any) (any, error) {
	if to != alignType || from.Kind() != reflect.String {
		return data, nil
	}
	a, ok := overlay.ParseAlign(data.(string))
	if !ok {
		return nil, fmt.Errorf("unknown alignment %q", data)
	}
	return a, nil
}
