package main

import "github.com/gaurav-prasanna/scrapemark/cmd"

func main() {
	cmd.Execute()
}
