package main

import "github.com/vasilii314/scheduler/cmd"

func main() {
	cmd.Execute()
}
