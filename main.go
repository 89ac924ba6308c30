package main

import (
	cmd "github.com/minjae-dev/logsift/cmd/logsift"
)

func main() {
	cmd.Execute()
}
