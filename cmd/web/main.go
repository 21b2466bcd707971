package main

import "psychportal_backend/internal/app"

func main() {
	app.Run()
}
