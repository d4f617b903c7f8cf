package cli

import (
	"fmt"
	"io"
)

func Help(program string, stdout io.Writer) {
	Version(stdout)
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] FileName1 [Filename2...]\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Options:")
	fmt.Fprintln(stdout, "--help, -h")
	fmt.Fprintln(stdout, "                    Display this help and exit")
	fmt.Fprintln(stdout, "--version")
	fmt.Fprintln(stdout, "                    Display version information and exit")
	fmt.Fprintln(stdout, "--fps=<float>, -f")
	fmt.Fprintln(stdout, "                    Frames-per-second hint for frame-indexed formats (MicroDVD)")
	fmt.Fprintln(stdout, "--output=TEXT|JSON|CSV|SRT")
	fmt.Fprintln(stdout, "                    Select output format (default TEXT)")
	fmt.Fprintln(stdout, "--info-parameters")
	fmt.Fprintln(stdout, "                    Display list of supported subtitle formats")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Commands:")
	fmt.Fprintln(stdout, "completion           Generate the autocompletion script for the specified shell")
	fmt.Fprintln(stdout, "help                 Help about any command")
	fmt.Fprintln(stdout, "version              Print go-subdemux version information")
	fmt.Fprintln(stdout, "update               Update subdemux to latest version (release builds only)")
}

func HelpNothing(program string, stdout io.Writer) {
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] FileName1 [Filename2...]\"\n", program)
	fmt.Fprintf(stdout, "\"%s --help\" for displaying more information\n", program)
}

func HelpOutput(program string, stdout io.Writer) {
	fmt.Fprintln(stdout, "--output=...  Select an output format")
	fmt.Fprintf(stdout, "Usage: \"%s --output=JSON FileName\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Supported formats:")
	fmt.Fprintln(stdout, "TEXT, JSON, CSV, SRT")
}

func Usage(program string, stdout io.Writer) int {
	HelpNothing(program, stdout)
	return exitError
}

// InfoParameters lists the format names the demuxer can classify input as,
// grounded on the reference CLI's --info-parameters switch.
func InfoParameters() string {
	return "MicroDVD, SubRIP, SubViewer, SSA-1, SSA-2/3/4, SSA/ASS, VPlayer, " +
		"SAMI, DVDSubtitle, MPL2, AQTitle, PhoenixSub, MPSub, JacoSub, " +
		"PowerDivx, RealText, DKS, Subviewer 1, WebVTT, SBV, TTML"
}
