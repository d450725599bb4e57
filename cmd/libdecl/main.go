package main

import "github.com/goplus/libdecl/cmd/libdecl/internal"

func main() {
	internal.Execute()
}
