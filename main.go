package main

import (
	"os"

	"github.com/blogem/adminjournal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
