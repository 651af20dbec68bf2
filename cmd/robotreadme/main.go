package main

import "robotreadme/internal/cli"

func main() {
	cli.Execute()
}
