package mocks

import (
	"context"
	"encoding/json"

	"content-validator/core/remote"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of remote.Client. The first return value
// is re-encoded as JSON and decoded into out, mirroring the wire.
type Client struct {
	mock.Mock
}

func (m *Client) GetRemoteData(ctx context.Context, path string, params remote.Params, out any) error {
	args := m.Called(ctx, path, params)
	if err := args.Error(1); err != nil {
		return err
	}
	payload := args.Get(0)
	var data []byte
	switch p := payload.(type) {
	case string:
		data = []byte(p)
	case []byte:
		data = p
	default:
		encoded, err := json.Marshal(p)
		if err != nil {
			return err
		}
		data = encoded
	}
	if err := json.Unmarshal(data, out); err != nil {
		return remote.ErrRemoteDecode
	}
	return nil
}
