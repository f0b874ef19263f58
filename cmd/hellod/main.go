package main

import (
	"github.com/sbxservice/hello-service/pkg/cli"
)

func main() {
	cli.Execute()
}
