package hellolambda

import (
	"context"
	"encoding/json"
)

// Greeting is the text every invocation answers with.
const Greeting = "Hello, World!"

// Response is the value handed back to the Lambda runtime. It matches the
// proxy-integration shape API Gateway expects from a function.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handle answers any event with a 200 and the JSON encoded Greeting. Neither
// the context nor the event are looked at, so nil is fine for both.
func Handle(ctx context.Context, event any) Response {
	return Response{
		StatusCode: 200,
		Body:       greetingBody(),
	}
}

// LambdaHandler is the signature registered with lambda.Start.
func LambdaHandler(ctx context.Context, event json.RawMessage) (Response, error) {
	return Handle(ctx, event), nil
}

func Expected() Response {
	return Handle(context.Background(), nil)
}

func greetingBody() string {
	// encoding a string constant cannot fail
	body, _ := json.Marshal(Greeting)
	return string(body)
}
