package main

import (
	"fmt"
	"os"

	"github.com/confluentinc/cfnkit/cmd"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/all"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
