package main

import (
	"socialuni/internal/cmd"
)

func main() {
	cmd.Run()
}
