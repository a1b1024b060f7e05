package main

import "github.com/tabtidy/tabtidy/cmd"

func main() {
	cmd.Execute()
}
