package main

import "ngram/internal/cli"

func main() {
	cli.Execute()
}
