package types

// ------------------------------
// Request Types
// ------------------------------

// NewAccountRequest onboards a new account.
type NewAccountRequest struct {
	Email     string `json:"email"`
	APIKey    string `json:"api_key"`
	Authority string `json:"authority"`
}

// NewNodeRequest launches a node.
type NewNodeRequest struct {
	NodeName string            `json:"node_name"`
	Command  string            `json:"command"`
	Predefs  NodePredefs       `json:"predefs"`
	AppDefns map[string]string `json:"appdefns,omitempty"`
}

// NewPredefRequest registers a predefined stack.
type NewPredefRequest struct {
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	Role      string `json:"role"`
	Packaging string `json:"packaging"`
}

// NewPredefCloudRequest stores a cloud template for the calling account.
type NewPredefCloudRequest struct {
	Name   string            `json:"name"`
	Spec   PredefCloudSpec   `json:"spec"`
	Access PredefCloudAccess `json:"access"`
}
