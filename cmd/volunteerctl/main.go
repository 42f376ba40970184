package main

import "volunteer-tracker-go/cmd/volunteerctl/commands"

func main() {
	commands.Execute()
}
