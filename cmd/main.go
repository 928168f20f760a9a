package main

import (
	cmd "github.com/kerbaras/mangamobi/cmd/mangamobi"
)

func main() {
	cmd.Execute()
}
