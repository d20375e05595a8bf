package main

import "arcade-snake/cmd"

func main() {
	cmd.Execute()
}
