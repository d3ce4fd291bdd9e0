package main

import "github.com/theirongolddev/finsprint/cmd"

func main() {
	cmd.Execute()
}
