package mock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

type DummyLambdaClient struct {
	FuncExists    bool
	GetErr        error
	InvokeErr     error
	FunctionError *string
	Payload       []byte
	Invoked       *lambda.InvokeInput
}

func (d *DummyLambdaClient) GetFunction(ctx context.Context, input *lambda.GetFunctionInput, opts ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
	if d.GetErr != nil {
		return &lambda.GetFunctionOutput{}, d.GetErr
	}
	if !d.FuncExists {
		return &lambda.GetFunctionOutput{}, new(types.ResourceNotFoundException)
	}
	return &lambda.GetFunctionOutput{}, nil
}

func (d *DummyLambdaClient) Invoke(ctx context.Context, input *lambda.InvokeInput, opts ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	d.Invoked = input
	if d.InvokeErr != nil {
		return nil, d.InvokeErr
	}
	return &lambda.InvokeOutput{
		StatusCode:    200,
		FunctionError: d.FunctionError,
		Payload:       d.Payload,
	}, nil
}
