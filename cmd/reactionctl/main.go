package main

import (
	"fmt"
	"os"
)

func main() {
	var ctl reactionctl
	ctl.loadApp()

	if err := ctl.app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
