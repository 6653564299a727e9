package main

import (
	"os"

	foliocmder "github.com/let-the-dreamers-rise/resume-sub000/cmd/folio"
)

func main() {
	cmd := foliocmder.NewFolioCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
