package main

import "github.com/vytor/leetrecall/internal/cli"

func main() {
	cli.Execute()
}
