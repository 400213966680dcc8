package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
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

// Start requests the daemon to start processing.
func (c *Client) Start() (*StartResponse, error) {
	var resp StartResponse
	if err := c.client.Call(ServiceName+".Start", StartRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stop requests the daemon to drain its queue and stop.
func (c *Client) Stop() (*StopResponse, error) {
	var resp StopResponse
	if err := c.client.Call(ServiceName+".Stop", StopRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call(ServiceName+".Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Enqueue submits one raw instruction for execution.
func (c *Client) Enqueue(correlationToken, instruction string) (*EnqueueResponse, error) {
	var resp EnqueueResponse
	req := EnqueueRequest{CorrelationToken: correlationToken, Instruction: instruction}
	if err := c.client.Call(ServiceName+".Enqueue", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParamGet fetches one parameter by name.
func (c *Client) ParamGet(name string) (*ParamGetResponse, error) {
	var resp ParamGetResponse
	if err := c.client.Call(ServiceName+".ParamGet", ParamGetRequest{Name: name}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParamList fetches a snapshot of all parameters.
func (c *Client) ParamList() (*ParamListResponse, error) {
	var resp ParamListResponse
	if err := c.client.Call(ServiceName+".ParamList", ParamListRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TaskList fetches the registered task names.
func (c *Client) TaskList() (*TaskListResponse, error) {
	var resp TaskListResponse
	if err := c.client.Call(ServiceName+".TaskList", TaskListRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
