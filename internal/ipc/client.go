package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to a running confmind server.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ingest runs the full pipeline on transcript text.
func (c *Client) Ingest(req IngestRequest) (*IngestResponse, error) {
	var resp IngestResponse
	if err := c.client.Call("Mind.Ingest", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ask routes a question to a stored conference mind.
func (c *Client) Ask(req AskRequest) (*AskResponse, error) {
	var resp AskResponse
	if err := c.client.Call("Mind.Ask", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Speakers lists a conference's speakers.
func (c *Client) Speakers(conference string) (*SpeakersResponse, error) {
	var resp SpeakersResponse
	if err := c.client.Call("Mind.Speakers", ConferenceRequest{Conference: conference}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Themes lists a conference's ranked themes.
func (c *Client) Themes(conference string) (*ThemesResponse, error) {
	var resp ThemesResponse
	if err := c.client.Call("Mind.Themes", ConferenceRequest{Conference: conference}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Tensions lists a conference's detected tensions.
func (c *Client) Tensions(conference string) (*TensionsResponse, error) {
	var resp TensionsResponse
	if err := c.client.Call("Mind.Tensions", ConferenceRequest{Conference: conference}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List enumerates stored conference minds.
func (c *Client) List() (*ListResponse, error) {
	var resp ListResponse
	if err := c.client.Call("Mind.List", ListRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes a stored conference mind.
func (c *Client) Delete(name string) (*DeleteResponse, error) {
	var resp DeleteResponse
	if err := c.client.Call("Mind.Delete", DeleteRequest{Name: name}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
