package hellolambda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

var RequestID = GenerateRequestID

func GenerateRequestID() string {
	return uuid.New().String()
}

// LocalInvocation is the outcome of one in-process run of the handler.
type LocalInvocation struct {
	RequestID string
	Response  Response
}

// InvokeLocal runs LambdaHandler through the same reflection and
// serialisation path the Lambda runtime uses, without needing a host.
//
// An empty or blank payload stands in for an absent event and is sent as
// JSON null.
func InvokeLocal(ctx context.Context, payload []byte) (Response, error) {
	inv, err := InvokeLocalRequest(ctx, payload)
	return inv.Response, err
}

// InvokeLocalRequest is InvokeLocal, also reporting the request ID the
// invocation ran under.
func InvokeLocalRequest(ctx context.Context, payload []byte) (LocalInvocation, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		payload = []byte("null")
	}
	inv := LocalInvocation{RequestID: RequestID()}
	ctx = lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID: inv.RequestID,
	})
	out, err := lambda.NewHandler(LambdaHandler).Invoke(ctx, payload)
	if err != nil {
		return inv, fmt.Errorf("local invocation %s failed: %w", inv.RequestID, err)
	}
	err = json.Unmarshal(out, &inv.Response)
	if err != nil {
		return inv, fmt.Errorf("failure in decoding response %q: %w", out, err)
	}
	return inv, nil
}
