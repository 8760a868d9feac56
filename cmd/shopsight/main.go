package main

import (
	"github.com/matthieukhl/shopsight/internal/cmd"
)

func main() {
	cmd.Execute()
}
