package main

import "gamevault/backend/cmd/vaultctl/command"

func main() {
	command.Execute()
}
