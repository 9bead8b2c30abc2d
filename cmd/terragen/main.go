package main

import "github.com/MeKo-Tech/terragen/internal/cmd"

func main() {
	cmd.Execute()
}
