package codec

import (
	"bytes"
	"fmt"

	"github.com/signadot/jvalue/ir"

	jsoniter "github.com/json-iterator/go"
)

var iterConfig = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// JSONIter returns a codec backed by json-iterator. Marshalled object keys
// are sorted.
func JSONIter() ir.Codec {
	return iterCodec{api: iterConfig}
}

type iterCodec struct {
	api jsoniter.API
}

func (c iterCodec) Marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return c.api.MarshalIndent(v, "", "  ")
	}
	return c.api.Marshal(v)
}

// Unmarshal skips the library's Valid check: it parses numbers as
// float64 and so rejects finite numbers beyond float64 range, which
// UseNumber decoding keeps as text.
func (c iterCodec) Unmarshal(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ir.ErrParse)
	}
	var res any
	if err := c.api.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	return res, nil
}
