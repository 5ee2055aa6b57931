package main

import "github.com/kpfaulkner/gdxtex/cmd/gdxtex/cmd"

func main() {
	cmd.Execute()
}
