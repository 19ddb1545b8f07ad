package client

import (
	"github.com/jeevavj/megam-api/auth"
	"github.com/jeevavj/megam-api/client/internal/api"
	"github.com/jeevavj/megam-api/client/internal/types"
	"github.com/jeevavj/megam-api/jsoncompat"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	NewAccountRequest     = types.NewAccountRequest
	NewNodeRequest        = types.NewNodeRequest
	NewPredefRequest      = types.NewPredefRequest
	NewPredefCloudRequest = types.NewPredefCloudRequest

	// Domain entities
	Account           = types.Account
	Node              = types.Node
	NodeRequest       = types.NodeRequest
	NodePredefs       = types.NodePredefs
	Predef            = types.Predef
	PredefCloud       = types.PredefCloud
	PredefCloudSpec   = types.PredefCloudSpec
	PredefCloudAccess = types.PredefCloudAccess
	Message           = types.Message

	// Resources
	ResourceObject     = types.ResourceObject
	ResourceBase       = types.ResourceBase
	Resource           = types.Resource
	PackageResource    = types.PackageResource
	ServiceResource    = types.ServiceResource
	FileResource       = types.FileResource
	ResourceCollection = types.ResourceCollection

	// Responses
	NodeCollection        = types.NodeCollection
	PredefCollection      = types.PredefCollection
	PredefCloudCollection = types.PredefCloudCollection
	Response              = api.Response

	Credentials = auth.Credentials
)

// Registry returns the registry of built-in Megam types.
func Registry() *jsoncompat.Registry { return types.Registry() }

// Decode decodes data into Megam domain values using the built-in registry.
func Decode(data []byte) (any, error) { return types.Registry().Decode(data) }
