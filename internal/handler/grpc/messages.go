package grpc

// Empty is the request and response of calls without payload.
type Empty struct{}

// NameRequest addresses one secret by name.
type NameRequest struct {
	Name string `json:"name"`
}
