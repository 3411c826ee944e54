package logging

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// Loggable is implemented by values that control how they appear in logs
// and span tags, typically to redact or flatten fields.
type Loggable interface {
	LogProjection() interface{}
}

// Project returns the loggable projection of v. Loggable values are asked
// for their projection, errors become {"message": ...}, Stringers become
// their string and the elements of generic slices and maps are projected
// recursively. Anything else is returned as is.
func Project(v interface{}) interface{} {
	switch v := v.(type) {
	case nil:
		return nil
	case Loggable:
		return v.LogProjection()
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	case error:
		return projectError(v)
	case fmt.Stringer:
		return v.String()
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = Project(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = Project(e)
		}
		return out
	default:
		return v
	}
}

func projectError(err error) interface{} {
	out := map[string]interface{}{"message": err.Error()}
	var inner Loggable
	if errors.As(err, &inner) {
		out["source"] = inner.LogProjection()
	}
	return out
}

// ToJSON encodes the projection of v as JSON. If v cannot be encoded the
// JSON string of its default formatting is returned instead.
func ToJSON(v interface{}) string {
	b, err := sonic.ConfigStd.Marshal(Project(v))
	if err != nil {
		b, _ = sonic.ConfigStd.Marshal(fmt.Sprint(v))
	}
	return string(b)
}
