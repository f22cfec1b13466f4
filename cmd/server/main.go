package main

import "dayspan/internal/app/server"

func main() {
	server.Run()
}
