package main

import "awards_backend/internal/app"

func main() {
	app.Run()
}
