package main

import "learn-tasks.com/learn-tasks/cmd"

func main() {
	cmd.Execute()
}
