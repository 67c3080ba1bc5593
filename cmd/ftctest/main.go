package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jaxartes/jaxartes-misc/ftctest"
	"github.com/Jaxartes/jaxartes-misc/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┌┬┐┌─┐┌┬┐┌─┐┌─┐┌┬┐
├┤  │ │   │ ├┤ └─┐ │
└   ┴ └─┘ ┴ └─┘└─┘ ┴

Fake-time clock test output checker.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Test log source (file, URL or - for a stdin pipe)")
	destination = flag.String("out", pipeName, "Destination (file or - for stdout)")

	// spinner used to instantiate and call the progress indicator.
	spinner *utils.Spinner
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	src, dst := openStreams(*source, *destination)
	if utils.IsValidUrl(*source) {
		defer os.Remove(src.Name())
	}
	defer src.Close()
	defer dst.Close()

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⏱ FTCTEST", utils.StatusMessage),
		utils.DecorateText("is checking the clock output...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	now := time.Now()
	spinner.Start()

	summary, err := ftctest.Analyze(src, dst)

	spinner.Stop()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError checking the clock output: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
	if err := summary.Report(dst); err != nil {
		log.Fatalf(utils.DecorateText("Unable to write the summary: %v", utils.ErrorMessage), err)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// openStreams converts the source and destination names to readable and
// writable files, downloading the source first in case it is a URL.
func openStreams(in, out string) (src, dst *os.File) {
	var err error

	// Check if the source path is a local file or URL.
	if utils.IsValidUrl(in) {
		src, err = utils.DownloadFile(in)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the test log: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	} else if in == pipeName {
		// Check if the source is a pipe name or a regular file.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Fatalf(utils.DecorateText("`-` should be used with a pipe for stdin\n", utils.ErrorMessage))
		}
		src = os.Stdin
	} else {
		src, err = os.Open(in)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Unable to open the test log: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}

	if out == pipeName {
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Unable to create the destination file: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}
	return src, dst
}
