package main

import "github.com/mouse-blink/locstat/cmd"

func main() {
	cmd.Execute()
}
