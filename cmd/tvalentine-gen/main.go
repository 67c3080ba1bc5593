package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Jaxartes/jaxartes-misc/utils"
	"github.com/Jaxartes/jaxartes-misc/valentine"
)

const HelpBanner = `
┌┬┐┬  ┬┌─┐┬  ┌─┐┌┐┌┌┬┐┬┌┐┌┌─┐
 │ └┐┌┘├─┤│  ├┤ │││ │ ││││├┤
 ┴  └┘ ┴ ┴┴─┘└─┘┘└┘ ┴ ┴┘└┘└─┘

Heart bitmap generator for the tvalentine animation.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", pipeName, "Destination (file or - for stdout); a .png, .jpg or .bmp extension renders an image instead of the source table")
	cellSize    = flag.Int("cell", 8, "Pixels per grid cell for image output")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	heart := valentine.Heart()

	if *destination == pipeName {
		if err := heart.WriteTable(os.Stdout); err != nil {
			printStatus(err)
		}
		return
	}

	dst, err := os.OpenFile(*destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Unable to create the destination file: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	defer dst.Close()

	switch ext := filepath.Ext(*destination); ext {
	case ".png", ".jpg", ".jpeg", ".bmp":
		err = heart.Encode(dst, ext, *cellSize)
	default:
		err = heart.WriteTable(dst)
	}
	printStatus(err)

	fmt.Fprintf(os.Stderr, "The bitmap has been saved as: %s %s\n",
		utils.DecorateText(filepath.Base(*destination), utils.SuccessMessage),
		utils.DefaultColor,
	)
}

// printStatus reports a generation failure and bails out.
func printStatus(err error) {
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Error generating the bitmap: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
}
