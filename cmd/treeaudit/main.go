package main

import (
	"os"

	"treeaudit/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
