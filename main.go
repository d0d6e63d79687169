package main

import "github.com/xvierd/valentine-cli/cmd"

func main() {
	cmd.Execute()
}
