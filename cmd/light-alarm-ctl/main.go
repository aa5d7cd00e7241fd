package main

import "github.com/oshokin/light-alarm/cmd/light-alarm-ctl/cmd"

func main() {
	cmd.Execute()
}
