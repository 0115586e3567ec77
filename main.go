package main

import "github.com/vibast-solutions/gym-console/cmd"

func main() {
	cmd.Execute()
}
