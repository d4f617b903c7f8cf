package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/autobrr/go-subdemux/internal/subdemux"
)

const (
	exitOK    = 0
	exitError = 1
)

type Options struct {
	FPS    float64
	Output string
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return exitError
	}

	program := programName(args[0])
	var opts Options
	var files []string

	for i := 1; i < len(args); i++ {
		original := args[i]
		normalized := normalizeArg(original)

		switch {
		case normalized == "--version":
			Version(stdout)
			return exitOK
		case normalized == "--help" || normalized == "-h":
			Help(program, stdout)
			return exitOK
		case normalized == "--help-output":
			HelpOutput(program, stdout)
			return exitOK
		case normalized == "--info-parameters":
			fmt.Fprintln(stdout, InfoParameters())
			return exitOK
		case strings.HasPrefix(normalized, "--fps="):
			if value, ok := valueAfterEqual(original); ok {
				if fps, err := strconv.ParseFloat(value, 64); err == nil && fps > 0 {
					opts.FPS = fps
				}
			}
		case normalized == "-f":
			if i+1 < len(args) {
				i++
				if fps, err := strconv.ParseFloat(args[i], 64); err == nil && fps > 0 {
					opts.FPS = fps
				}
			}
		case strings.HasPrefix(normalized, "--output="):
			if value, ok := valueAfterEqual(original); ok {
				opts.Output = value
			} else {
				HelpOutput(program, stdout)
				return exitError
			}
		default:
			files = append(files, original)
		}
	}

	if len(files) == 0 {
		return Usage(program, stdout)
	}

	output, count, err := runCore(opts, files, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	if output != "" {
		fmt.Fprint(stdout, output)
	}

	if count > 0 {
		return exitOK
	}
	return exitError
}

func programName(arg0 string) string {
	name := filepath.Base(arg0)
	if runtime.GOOS == "windows" {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func normalizeArg(arg string) string {
	eq := strings.IndexByte(arg, '=')
	if eq == -1 {
		eq = len(arg)
	}
	lower := strings.ToLower(arg[:eq])
	return lower + arg[eq:]
}

func valueAfterEqual(arg string) (string, bool) {
	_, after, ok := strings.Cut(arg, "=")
	if !ok {
		return "", false
	}
	return after, true
}

func runCore(opts Options, files []string, stderr io.Writer) (string, int, error) {
	outputName := "TEXT"
	if opts.Output != "" {
		outputName = strings.ToUpper(strings.TrimSpace(opts.Output))
		switch outputName {
		case "TEXT", "JSON", "CSV", "SRT":
		default:
			return "", 0, fmt.Errorf("output format not implemented: %s", opts.Output)
		}
	}

	var usPerFrame int64
	if opts.FPS > 0 {
		usPerFrame = int64(math.Round(1000000 / opts.FPS))
	}

	var buf strings.Builder
	count := 0
	for _, path := range files {
		data, err := os.ReadFile(path) //nolint:gosec // CLI argument, user-supplied on purpose
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}

		handle, err := subdemux.Open(string(data), usPerFrame)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", path, err)
			continue
		}

		switch outputName {
		case "JSON":
			buf.WriteString(subdemux.RenderJSON(handle))
		case "CSV":
			buf.WriteString(subdemux.RenderCSV(handle))
		case "SRT":
			buf.WriteString(subdemux.RenderSRT(handle))
		default:
			buf.WriteString(subdemux.RenderText(handle))
		}
		count++
	}

	return buf.String(), count, nil
}
