package opentracing

import "strings"

// URLParts are the pieces of an endpoint string. Protocol keeps its "://".
type URLParts struct {
	Protocol string
	Host     string
	Port     string
	Path     string
	Query    string
}

// ParseURL splits an endpoint such as "http://host:1234/api?x=1" or a bare
// "host:port" into its parts. It never fails: malformed input yields
// best-effort, possibly empty, parts. Encoding, IPv6 brackets and repeated
// '?' are not handled.
func ParseURL(url string) URLParts {
	protocolEnd := 0
	if i := strings.Index(url, "://"); i >= 0 {
		protocolEnd = i + len("://")
	}

	pathEnd, queryStart := len(url), len(url)
	if i := strings.IndexByte(url[protocolEnd:], '?'); i >= 0 {
		pathEnd = protocolEnd + i
		queryStart = pathEnd + 1
	}

	pathStart := pathEnd
	if i := strings.IndexByte(url[protocolEnd:], '/'); i >= 0 && protocolEnd+i < pathEnd {
		pathStart = protocolEnd + i
	}

	// The port keeps everything after the first colon.
	host, port, _ := strings.Cut(url[protocolEnd:pathStart], ":")
	return URLParts{
		Protocol: url[:protocolEnd],
		Host:     host,
		Port:     port,
		Path:     url[pathStart:pathEnd],
		Query:    url[queryStart:],
	}
}
