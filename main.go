package main

import "sendaboop-backend/cmd"

func main() {
	cmd.Run()
}
