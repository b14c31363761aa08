package main

import (
	"log"

	"pipeline-studio/internal/app"
)

//go:generate swag init -g main.go -o docs

// @title Pipeline Studio API
// @version 1.0
// @description Pipeline store, builder wizard sessions and saved queries for the analysis pipeline studio.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
