package main

import "github.com/vmcwm/vmcwm/cmd"

func main() {
	cmd.Execute()
}
