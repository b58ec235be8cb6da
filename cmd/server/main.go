package main

import (
	"os"

	"trivia-api/internal/cli"
)

// @title           Trivia API
// @version         1.0
// @description     Trivia question bank: categories, paginated questions, search and quizzes.
// @host            localhost:5000
// @BasePath        /

func main() {
	os.Exit(cli.New().Execute())
}
