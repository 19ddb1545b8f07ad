package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jeevavj/megam-api/client/internal/types"
)

// ListPredefs returns the predefined stacks.
func ListPredefs(ctx context.Context, c Conn) ([]*types.Predef, error) {
	resp, err := Do(ctx, c, http.MethodGet, "/predefs", nil)
	if err != nil {
		return nil, err
	}
	if coll, ok := resp.Body.(*types.PredefCollection); ok {
		return coll.Results, nil
	}
	return listOf[types.Predef]("list predefs", resp.Body)
}

// GetPredef retrieves a predefined stack by name.
func GetPredef(ctx context.Context, c Conn, name string) (*types.Predef, error) {
	if err := types.ValidateIDPresent(name, "predef name"); err != nil {
		return nil, err
	}
	resp, err := Do(ctx, c, http.MethodGet, "/predefs/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}
	return bodyAs[types.Predef]("get predef", resp)
}

// CreatePredef registers a predefined stack.
func CreatePredef(ctx context.Context, c Conn, req types.NewPredefRequest) (*types.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := Do(ctx, c, http.MethodPost, "/predefs/content", req)
	if err != nil {
		return nil, err
	}
	return bodyAs[types.Message]("create predef", resp)
}

// ListPredefClouds returns the cloud templates of the calling account.
func ListPredefClouds(ctx context.Context, c Conn) ([]*types.PredefCloud, error) {
	resp, err := Do(ctx, c, http.MethodGet, "/predefclouds", nil)
	if err != nil {
		return nil, err
	}
	if coll, ok := resp.Body.(*types.PredefCloudCollection); ok {
		return coll.Results, nil
	}
	return listOf[types.PredefCloud]("list predef clouds", resp.Body)
}

// GetPredefCloud retrieves a cloud template by name.
func GetPredefCloud(ctx context.Context, c Conn, name string) (*types.PredefCloud, error) {
	if err := types.ValidateIDPresent(name, "predef cloud name"); err != nil {
		return nil, err
	}
	resp, err := Do(ctx, c, http.MethodGet, "/predefclouds/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}
	return bodyAs[types.PredefCloud]("get predef cloud", resp)
}

// CreatePredefCloud stores a cloud template.
func CreatePredefCloud(ctx context.Context, c Conn, req types.NewPredefCloudRequest) (*types.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := Do(ctx, c, http.MethodPost, "/predefclouds/content", req)
	if err != nil {
		return nil, err
	}
	return bodyAs[types.Message]("create predef cloud", resp)
}
