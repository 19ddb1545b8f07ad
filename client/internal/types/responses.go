package types

import "github.com/jeevavj/megam-api/jsoncompat"

// ------------------------------
// Collection Responses
// ------------------------------

// NodeCollection wraps the list endpoint response.
type NodeCollection struct {
	Results []*Node `json:"results"`
}

func (c NodeCollection) MarshalJSON() ([]byte, error) {
	type alias NodeCollection
	return jsoncompat.MarshalTagged(ClassNodeCollection, alias(c))
}

// PredefCollection wraps the list endpoint response.
type PredefCollection struct {
	Results []*Predef `json:"results"`
}

func (c PredefCollection) MarshalJSON() ([]byte, error) {
	type alias PredefCollection
	return jsoncompat.MarshalTagged(ClassPredefCollection, alias(c))
}

// PredefCloudCollection wraps the list endpoint response.
type PredefCloudCollection struct {
	Results []*PredefCloud `json:"results"`
}

func (c PredefCloudCollection) MarshalJSON() ([]byte, error) {
	type alias PredefCloudCollection
	return jsoncompat.MarshalTagged(ClassPredefCloudCollection, alias(c))
}
