package types

import "github.com/jeevavj/megam-api/jsoncompat"

// ResourceObject is implemented by Megam::Resource and every member of the
// Megam::Resource::* family.
type ResourceObject interface {
	ResourceName() string
	JSONClass() string
}

// ResourceBase holds the fields every resource shares.
type ResourceBase struct {
	Name       string         `json:"name"`
	Action     string         `json:"action,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

func (r ResourceBase) ResourceName() string { return r.Name }

// Resource is the untyped Megam::Resource.
type Resource struct {
	ResourceBase
}

func (Resource) JSONClass() string { return ClassResource }

func (r Resource) MarshalJSON() ([]byte, error) {
	type alias Resource
	return jsoncompat.MarshalTagged(ClassResource, alias(r))
}

// PackageResource installs a package.
type PackageResource struct {
	ResourceBase
	Version string `json:"version,omitempty"`
}

func (PackageResource) JSONClass() string { return ClassResource + "::Package" }

func (r PackageResource) MarshalJSON() ([]byte, error) {
	type alias PackageResource
	return jsoncompat.MarshalTagged(r.JSONClass(), alias(r))
}

// ServiceResource manages a system service.
type ServiceResource struct {
	ResourceBase
	Enabled bool `json:"enabled"`
	Running bool `json:"running"`
}

func (ServiceResource) JSONClass() string { return ClassResource + "::Service" }

func (r ServiceResource) MarshalJSON() ([]byte, error) {
	type alias ServiceResource
	return jsoncompat.MarshalTagged(r.JSONClass(), alias(r))
}

// FileResource renders a file on the node.
type FileResource struct {
	ResourceBase
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
	Mode    string `json:"mode,omitempty"`
}

func (FileResource) JSONClass() string { return ClassResource + "::File" }

func (r FileResource) MarshalJSON() ([]byte, error) {
	type alias FileResource
	return jsoncompat.MarshalTagged(r.JSONClass(), alias(r))
}

// ResourceCollection is an ordered list of resources of mixed kinds.
type ResourceCollection struct {
	Resources []ResourceObject `json:"resources"`
}

func (c ResourceCollection) MarshalJSON() ([]byte, error) {
	type alias ResourceCollection
	return jsoncompat.MarshalTagged(ClassResourceCollection, alias(c))
}

// Lookup returns the first resource named name.
func (c *ResourceCollection) Lookup(name string) (ResourceObject, bool) {
	for _, r := range c.Resources {
		if r.ResourceName() == name {
			return r, true
		}
	}
	return nil, false
}
