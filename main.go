package main

import (
	"github.com/typeshift-io/typeshift/cmd"
	_ "github.com/typeshift-io/typeshift/gen/java"
	_ "github.com/typeshift-io/typeshift/gen/python"
)

func main() {
	cmd.Execute()
}
