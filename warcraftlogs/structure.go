package warcraftlogs

import (
	jsoniter "github.com/json-iterator/go"
)

// Response is the GraphQL envelope. Data is left undecoded; the rankings
// package walks it.
type Response struct {
	Data   jsoniter.RawMessage `json:"data"`
	Errors []GraphQLError      `json:"errors"`
}

type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path"`
}

////////////////////////////////////////////////////////////////////////////////////////////////////

type requestBody struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}
