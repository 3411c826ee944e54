package logging

import (
	"strconv"
	"strings"
	"time"
)

var lineEscaper = strings.NewReplacer("\n", `\n`, "\t", `\t`)

// Format renders a debug record for channel name stamped with the current time.
func Format(name string, args ...interface{}) string {
	return FormatAt(time.Now(), name, args...)
}

// FormatAt renders "<epochMillis>\t<name>\t<arg1>\t<arg2>...". The result
// never contains a raw newline or tab; both are escaped to two character
// sequences inside every field.
func FormatAt(t time.Time, name string, args ...interface{}) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(t.UnixMilli(), 10))
	b.WriteByte('\t')
	b.WriteString(lineEscaper.Replace(name))
	b.WriteByte('\t')
	for i, arg := range args {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(stringify(arg))
	}
	return b.String()
}

func stringify(arg interface{}) string {
	s, ok := arg.(string)
	if !ok {
		s = ToJSON(arg)
	}
	return lineEscaper.Replace(s)
}
