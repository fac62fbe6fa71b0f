package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mr-joshcrane/hellolambda"
	"github.com/mr-joshcrane/hellolambda/command"
)

func main() {
	if runningInLambda() {
		lambda.Start(hellolambda.LambdaHandler)
		return
	}
	err := command.Main(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// The runtime sets one of these before starting the bootstrap binary.
func runningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" || os.Getenv("_LAMBDA_SERVER_PORT") != ""
}
