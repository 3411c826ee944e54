// Command pretty renders the tab-delimited debug channel records written
// by logging.Gate in a human readable, optionally colored, form.
//
//	q-server | pretty -channels net,db
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/peterbourgon/ff/v3"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/logging"
)

const (
	red    = 31
	green  = 32
	yellow = 33
	blue   = 36
	gray   = 37
)

var errNotRecord = errors.New("not a record")

var channelColors = []int{green, yellow, blue, red}

var lineUnescaper = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

func main() {
	if err := exec(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		logging.New("pretty").Fatal(err, "pretty failed")
	}
}

type printer struct {
	w          io.Writer
	color      bool
	unescape   bool
	timeFormat string
	channels   map[string]bool
	colors     map[string]int
}

func exec(stdin io.Reader, stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("pretty", flag.ContinueOnError)
	var (
		noColor    = fs.Bool("no-color", false, "disable colored output")
		unescape   = fs.Bool("unescape", false, "expand escaped newlines and tabs in arguments")
		channels   = fs.String("channels", "", "comma separated channels to show, all when empty")
		timeFormat = fs.String("time-format", "15:04:05.000", "layout of the record timestamp")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pretty [OPTION]... [LOGFILE]\n")
		fs.PrintDefaults()
	}
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("PRETTY")); err != nil {
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

	p := &printer{
		w:          stdout,
		color:      !*noColor,
		unescape:   *unescape,
		timeFormat: *timeFormat,
		colors:     map[string]int{},
	}
	if *channels != "" {
		p.channels = map[string]bool{}
		for _, c := range strings.Split(*channels, ",") {
			p.channels[strings.TrimSpace(c)] = true
		}
	}
	return p.process(in)
}

func (p *printer) process(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		p.printLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// printLine prints a debug record, or the line untouched when it is not one.
// Lines that are not records are dropped while a channel filter is set.
func (p *printer) printLine(line string) {
	fields := strings.Split(line, "\t")
	var millis int64
	err := errNotRecord
	if len(fields) >= 2 {
		millis, err = strconv.ParseInt(fields[0], 10, 64)
	}
	if err != nil {
		if p.channels == nil {
			fmt.Fprintln(p.w, line)
		}
		return
	}
	channel := fields[1]
	if p.channels != nil && !p.channels[channel] {
		return
	}

	args := fields[2:]
	if len(args) == 1 && args[0] == "" {
		args = nil
	}
	if p.unescape {
		for i, a := range args {
			args[i] = lineUnescaper.Replace(a)
		}
	}

	stamp := time.UnixMilli(millis).UTC().Format(p.timeFormat)
	fmt.Fprintf(p.w, "%s %s %s\n", p.paint(gray, stamp), p.paint(p.colorOf(channel), fmt.Sprintf("%-8s", channel)), strings.Join(args, " "))
}

// colorOf assigns colors to channels in order of first appearance.
func (p *printer) colorOf(channel string) int {
	c, ok := p.colors[channel]
	if !ok {
		c = channelColors[len(p.colors)%len(channelColors)]
		p.colors[channel] = c
	}
	return c
}

func (p *printer) paint(color int, s string) string {
	if !p.color {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, s)
}
