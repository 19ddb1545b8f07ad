package types

import "github.com/jeevavj/megam-api/jsoncompat"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Account represents a Megam account.
type Account struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	APIKey    string `json:"api_key"`
	Authority string `json:"authority"`
	CreatedAt string `json:"created_at"`
}

func (a Account) MarshalJSON() ([]byte, error) {
	type alias Account
	return jsoncompat.MarshalTagged(ClassAccount, alias(a))
}

// NodeRequest is the command a node was launched with.
type NodeRequest struct {
	ReqID   string `json:"req_id"`
	Command string `json:"command"`
}

// NodePredefs names the stack a node runs.
type NodePredefs struct {
	Name  string `json:"name"`
	SCM   string `json:"scm"`
	War   string `json:"war"`
	DB    string `json:"db"`
	Queue string `json:"queue"`
}

// Node represents a provisioned node. A node may embed the nodes it manages.
type Node struct {
	ID          string      `json:"id"`
	AccountsID  string      `json:"accounts_id"`
	Name        string      `json:"name"`
	Status      string      `json:"status"`
	Request     NodeRequest `json:"request"`
	Predefs     NodePredefs `json:"predefs"`
	AppDefnsID  string      `json:"appdefnsid,omitempty"`
	BoltDefnsID string      `json:"boltdefnsid,omitempty"`
	Nodes       []*Node     `json:"nodes,omitempty"`
	CreatedAt   string      `json:"created_at"`
}

func (n Node) MarshalJSON() ([]byte, error) {
	type alias Node
	return jsoncompat.MarshalTagged(ClassNode, alias(n))
}

// Predef is a predefined stack offered by the platform.
type Predef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	Role      string `json:"role"`
	Packaging string `json:"packaging"`
	CreatedAt string `json:"created_at"`
}

func (p Predef) MarshalJSON() ([]byte, error) {
	type alias Predef
	return jsoncompat.MarshalTagged(ClassPredef, alias(p))
}

// PredefCloudSpec describes the cloud machine template.
type PredefCloudSpec struct {
	TypeName string `json:"type_name"`
	Groups   string `json:"groups"`
	Image    string `json:"image"`
	Flavor   string `json:"flavor"`
}

// PredefCloudAccess holds how to reach machines built from the template.
type PredefCloudAccess struct {
	SSHKey       string `json:"ssh_key"`
	IdentityFile string `json:"identity_file"`
	SSHUser      string `json:"ssh_user"`
}

// PredefCloud is an account specific cloud template.
type PredefCloud struct {
	ID          string            `json:"id"`
	AccountsID  string            `json:"accounts_id"`
	Name        string            `json:"name"`
	Spec        PredefCloudSpec   `json:"spec"`
	Access      PredefCloudAccess `json:"access"`
	IdealState  string            `json:"ideal,omitempty"`
	Performance string            `json:"performance,omitempty"`
	CreatedAt   string            `json:"created_at"`
}

func (p PredefCloud) MarshalJSON() ([]byte, error) {
	type alias PredefCloud
	return jsoncompat.MarshalTagged(ClassPredefCloud, alias(p))
}

// Message is the status envelope the server returns for writes and
// failures (class Megam::Error, used for successes too).
type Message struct {
	Code    int    `json:"code"`
	MsgType string `json:"msg_type"`
	Msg     string `json:"msg"`
	Links   string `json:"links,omitempty"`
	More    string `json:"more,omitempty"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	type alias Message
	return jsoncompat.MarshalTagged(ClassMessage, alias(m))
}

// IsError reports whether the server flagged the message as a failure.
func (m *Message) IsError() bool { return m.MsgType == "error" || m.Code >= 400 }
