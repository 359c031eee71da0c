package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/signadot/jvalue/debug"
	"github.com/signadot/jvalue/ir"

	"github.com/goccy/go-yaml"
)

// YAML returns a codec backed by goccy/go-yaml. YAML has no exact decimal
// form, so numbers survive a round trip only within float64 range and
// precision. Compact output uses flow style.
func YAML() ir.Codec {
	return yamlCodec{}
}

type yamlCodec struct{}

func (yamlCodec) Marshal(v any, pretty bool) ([]byte, error) {
	v, err := toYAML(v)
	if err != nil {
		return nil, err
	}
	if pretty {
		return yaml.MarshalWithOptions(v, yaml.Indent(2))
	}
	return yaml.MarshalWithOptions(v, yaml.Flow(true))
}

func (yamlCodec) Unmarshal(data []byte) (any, error) {
	var res any
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	return fromYAML(res)
}

// toYAML replaces number literals with the nearest int64, uint64 or
// float64.
func toYAML(v any) (any, error) {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(string(v), 10, 64); err == nil {
			return u, nil
		}
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil && !math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
		}
		if debug.Decode() && f != 0 {
			debug.Logf("yaml: %s encoded as float %v\n", v, f)
		}
		return f, nil
	case []any:
		res := make([]any, len(v))
		for i := range v {
			x, err := toYAML(v[i])
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case map[string]any:
		res := make(map[string]any, len(v))
		for k, item := range v {
			x, err := toYAML(item)
			if err != nil {
				return nil, err
			}
			res[k] = x
		}
		return res, nil
	}
	return v, nil
}

// fromYAML converts decoded YAML into shapes accepted by ir.FromDynamic,
// rendering finite floats as their shortest decimal text.
func fromYAML(v any) (any, error) {
	switch v := v.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v, nil
		}
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case float32:
		return fromYAML(float64(v))
	case []any:
		res := make([]any, len(v))
		for i := range v {
			x, err := fromYAML(v[i])
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case map[string]any:
		res := make(map[string]any, len(v))
		for k, item := range v {
			x, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			res[k] = x
		}
		return res, nil
	case map[any]any:
		res := make(map[string]any, len(v))
		for k, item := range v {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v", ir.ErrParse, k)
			}
			x, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			res[ks] = x
		}
		return res, nil
	}
	return v, nil
}
