package main

import "os"

func main() {
	os.Args = append(os.Args[:1], LegacyArgs(os.Args[1:])...)
	Execute()
}
