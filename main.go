package main

import "forum-provider/cmd"

func main() {
	cmd.Execute()
}
