package main

import "github.com/pattarapon/hr-console/cmd"

func main() {
	cmd.Execute()
}
