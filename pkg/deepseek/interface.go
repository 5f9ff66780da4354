package deepseek

import "context"

// IDeepSeek is a chat completions client.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
