// Command pplog pretty prints the JSON entries of logging.Logger.
//
// jq combines well with it, for example to drop fields or keep errors only:
//
//	cat q-server.log | jq -c 'del(.hostname)' | pplog
//	cat q-server.log | jq -c 'select(.level == "ERROR")' | pplog
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/peterbourgon/ff/v3"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/logging"
)

const (
	red    = 31
	green  = 32
	yellow = 33
)

func main() {
	if err := exec(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		logging.New("pplog").Fatal(err, "pplog failed")
	}
}

type printer struct {
	w     io.Writer
	color bool
	omit  map[string]bool
}

func exec(stdin io.Reader, stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("pplog", flag.ContinueOnError)
	var (
		noColor = fs.Bool("no-color", false, "disable colored output")
		omit    = fs.String("omit", "", "comma separated fields to leave out")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pplog [OPTION]... [LOGFILE]\n")
		fs.PrintDefaults()
	}
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("PPLOG")); err != nil {
		return err
	}

	in := stdin
	switch fs.NArg() {
	case 0:
	case 1:
		file, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	default:
		fs.Usage()
		return fmt.Errorf("expected at most one log file, got %d", fs.NArg())
	}

	p := &printer{w: stdout, color: !*noColor, omit: map[string]bool{}}
	for _, key := range strings.Split(*omit, ",") {
		if key = strings.TrimSpace(key); key != "" {
			p.omit[key] = true
		}
	}
	return p.process(in)
}

func (p *printer) process(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		var entry map[string]interface{}
		if err := sonic.UnmarshalString(line, &entry); err != nil || entry == nil {
			fmt.Fprintln(p.w, line)
			continue
		}
		p.printEntry(entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func extractAndRemove(m map[string]interface{}, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	delete(m, key)
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

func (p *printer) printEntry(entry map[string]interface{}) {
	level, _ := extractAndRemove(entry, logging.LevelKey)
	timestamp, timestampExists := extractAndRemove(entry, logging.TimeKey)
	file, _ := extractAndRemove(entry, logging.FileKey)
	message, _ := extractAndRemove(entry, logging.MessageKey)
	callstack, callstackExists := extractAndRemove(entry, logging.CallstackKey)

	if callstackExists {
		callstack = fmt.Sprintf("callstack=\n%s", callstack)
	}
	if timestampExists {
		if parsedTime, err := time.Parse(time.RFC3339, timestamp); err == nil {
			timestamp = parsedTime.Format("0102 15:04:05.999")
		}
	}

	var theRest []string
	for key, value := range entry {
		if p.omit[key] {
			continue
		}
		// quote the value if necessary
		if strings.Contains(fmt.Sprintf("%v", value), " ") {
			theRest = append(theRest, fmt.Sprintf("%s=\"%v\"", key, value))
		} else {
			theRest = append(theRest, fmt.Sprintf("%s=%v", key, value))
		}
	}
	sort.Strings(theRest)

	level = fmt.Sprintf("%-5s", level) // pad before colorization
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "WARN":
		level = p.colorize(yellow, level)
	case "ERROR", "FATAL":
		level = p.colorize(red, level)
	default:
		level = p.colorize(green, level)
	}

	out := fmt.Sprintf("%-17s %5s %-22s | \"%s\" %s %s", timestamp, level, file, message, strings.Join(theRest, " "), callstack)
	fmt.Fprintln(p.w, strings.TrimRight(out, " "))
}

func (p *printer) colorize(color int, str string) string {
	if !p.color {
		return str
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, str)
}
