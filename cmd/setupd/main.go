package main

import "github.com/aalvaropc/setupd/internal/cli"

func main() {
	cli.Execute()
}
