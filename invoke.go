package hellolambda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

var (
	ErrFunctionNotFound   = errors.New("function not found")
	ErrFunctionError      = errors.New("function returned an error")
	ErrUnexpectedResponse = errors.New("unexpected response")
)

type InvokeOption func(*lambda.InvokeInput)

func WithQualifier(qualifier string) InvokeOption {
	return func(in *lambda.InvokeInput) {
		if qualifier != "" {
			in.Qualifier = aws.String(qualifier)
		}
	}
}

func WithPayload(payload []byte) InvokeOption {
	return func(in *lambda.InvokeInput) {
		if len(payload) > 0 {
			in.Payload = payload
		}
	}
}

func InvokeCommand(name string, opts ...InvokeOption) lambda.InvokeInput {
	in := lambda.InvokeInput{
		FunctionName:   aws.String(name),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        []byte("null"),
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// InvokeRemote calls a deployed copy of the function and checks that it
// answers with the Expected response. When the function answers with
// something else, the decoded response is returned alongside an error
// wrapping ErrUnexpectedResponse.
func InvokeRemote(ctx context.Context, c LambdaClient, name string, opts ...InvokeOption) (Response, error) {
	exists, err := functionExists(ctx, c, name)
	if err != nil {
		return Response{}, fmt.Errorf("failure in looking up %s: %w", name, err)
	}
	if !exists {
		return Response{}, fmt.Errorf("%s: %w", name, ErrFunctionNotFound)
	}
	cmd := InvokeCommand(name, opts...)
	out, err := c.Invoke(ctx, &cmd)
	if err != nil {
		return Response{}, fmt.Errorf("failure in invoking %s: %w", name, err)
	}
	if out.FunctionError != nil {
		return Response{}, fmt.Errorf("%s: %w: %s: %s", name, ErrFunctionError, *out.FunctionError, out.Payload)
	}
	var resp Response
	err = json.Unmarshal(out.Payload, &resp)
	if err != nil {
		return Response{}, fmt.Errorf("failure in decoding response from %s: %w", name, err)
	}
	if resp != Expected() {
		return resp, fmt.Errorf("%s answered %+v: %w", name, resp, ErrUnexpectedResponse)
	}
	return resp, nil
}
