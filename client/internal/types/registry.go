package types

import "github.com/jeevavj/megam-api/jsoncompat"

// json_claz values understood by the client.
const (
	ClassAccount               = "Megam::Account"
	ClassNode                  = "Megam::Node"
	ClassNodeCollection        = "Megam::NodeCollection"
	ClassPredef                = "Megam::Predef"
	ClassPredefCollection      = "Megam::PredefCollection"
	ClassPredefCloud           = "Megam::PredefCloud"
	ClassPredefCloudCollection = "Megam::PredefCloudCollection"
	ClassResource              = "Megam::Resource"
	ClassResourceCollection    = "Megam::ResourceCollection"
	ClassMessage               = "Megam::Error"
)

// registry is built once at package init and never mutated afterwards.
var registry = jsoncompat.NewRegistry(
	jsoncompat.WithType(ClassAccount, jsoncompat.Into[Account]()),
	jsoncompat.WithType(ClassNode, jsoncompat.Into[Node]()),
	jsoncompat.WithType(ClassNodeCollection, jsoncompat.Into[NodeCollection]()),
	jsoncompat.WithType(ClassPredef, jsoncompat.Into[Predef]()),
	jsoncompat.WithType(ClassPredefCollection, jsoncompat.Into[PredefCollection]()),
	jsoncompat.WithType(ClassPredefCloud, jsoncompat.Into[PredefCloud]()),
	jsoncompat.WithType(ClassPredefCloudCollection, jsoncompat.Into[PredefCloudCollection]()),
	jsoncompat.WithType(ClassResource, jsoncompat.Into[Resource]()),
	jsoncompat.WithType(ClassResourceCollection, jsoncompat.Into[ResourceCollection]()),
	jsoncompat.WithType(ClassMessage, jsoncompat.Into[Message]()),
	jsoncompat.WithFamily(ClassResource, jsoncompat.FamilyTable(ClassResource, map[string]jsoncompat.Constructor{
		"Package": jsoncompat.Into[PackageResource](),
		"Service": jsoncompat.Into[ServiceResource](),
		"File":    jsoncompat.Into[FileResource](),
	})),
)

// Registry returns the shared registry of Megam domain types.
func Registry() *jsoncompat.Registry { return registry }
