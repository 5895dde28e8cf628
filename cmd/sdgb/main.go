package main

import "github.com/iudanet/sdgb/cmd/sdgb/cmd"

func main() {
	cmd.Execute()
}
