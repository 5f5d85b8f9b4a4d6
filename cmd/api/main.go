package main

import (
	"os"
)

// @title Pet API
// @version 1.0
// @description CRUD de mascotas sobre una tabla relacional.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
