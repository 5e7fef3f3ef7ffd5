package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/fx"

	"serverless-fetch-go/internal/adapter/lambda"
	"serverless-fetch-go/internal/app"
	"serverless-fetch-go/internal/config"
	"serverless-fetch-go/internal/service"
)

// CLI extends the shared flags with the Lambda event source.
type CLI struct {
	config.CLI `kong:"embed"`

	Event string `kong:"default='apigateway',enum='apigateway,function-url',help='Event shape: apigateway|function-url.',env='LAMBDA_EVENT'"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("aws-lambda"),
		kong.Description("AWS Lambda handler returning a freshly fetched copy of the target page."),
	)

	var h service.Handler
	fxApp := fx.New(
		app.Module,
		fx.Supply(&cli.CLI),
		fx.Populate(&h),
		fx.NopLogger,
	)
	if err := fxApp.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	switch cli.Event {
	case "function-url":
		awslambda.Start(lambda.NewFunctionURL(h))
	default:
		awslambda.Start(lambda.New(h))
	}
}
