package main

import "github.com/JohannesSchorr/mnkappa/cmd"

func main() {
	cmd.Execute()
}
