package main

import "github.com/rpupo63/portfolio-site/cmd"

func main() {
	cmd.Execute()
}
