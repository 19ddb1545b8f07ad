package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jeevavj/megam-api/client/internal/types"
)

// ListNodes returns every node of the calling account.
func ListNodes(ctx context.Context, c Conn) ([]*types.Node, error) {
	resp, err := Do(ctx, c, http.MethodGet, "/nodes", nil)
	if err != nil {
		return nil, err
	}
	if coll, ok := resp.Body.(*types.NodeCollection); ok {
		return coll.Results, nil
	}
	return listOf[types.Node]("list nodes", resp.Body)
}

// GetNode retrieves a node by name.
func GetNode(ctx context.Context, c Conn, name string) (*types.Node, error) {
	if err := types.ValidateIDPresent(name, "node name"); err != nil {
		return nil, err
	}
	resp, err := Do(ctx, c, http.MethodGet, "/nodes/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}
	return bodyAs[types.Node]("get node", resp)
}

// CreateNode asks the server to launch a node. The node is provisioned
// asynchronously; the returned message only acknowledges the request.
func CreateNode(ctx context.Context, c Conn, req types.NewNodeRequest) (*types.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := Do(ctx, c, http.MethodPost, "/nodes/content", req)
	if err != nil {
		return nil, err
	}
	return bodyAs[types.Message]("create node", resp)
}
