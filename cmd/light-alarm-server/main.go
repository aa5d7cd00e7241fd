package main

import "github.com/oshokin/light-alarm/cmd/light-alarm-server/cmd"

func main() {
	cmd.Execute()
}
