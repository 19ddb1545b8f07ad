package types

import (
	"testing"

	"github.com/jeevavj/megam-api/jsoncompat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Node(t *testing.T) {
	t.Parallel()
	got, err := Registry().Decode([]byte(`{"json_claz":"Megam::Node","name":"n1"}`))
	require.NoError(t, err)
	n, ok := got.(*Node)
	require.True(t, ok, "expected *Node, got %T", got)
	assert.Equal(t, "n1", n.Name)
}

func TestRegistry_NodeWithinNode(t *testing.T) {
	t.Parallel()
	doc := `{
		"json_claz": "Megam::Node",
		"id": "NOD1", "name": "parent", "status": "running",
		"request": {"req_id": "RIP1", "command": "launch"},
		"predefs": {"name": "rails", "scm": "git", "db": "postgres"},
		"nodes": [{"json_claz": "Megam::Node", "id": "NOD2", "name": "child"}]
	}`
	got, err := Registry().Decode([]byte(doc))
	require.NoError(t, err)

	n := got.(*Node)
	assert.Equal(t, "NOD1", n.ID)
	assert.Equal(t, NodeRequest{ReqID: "RIP1", Command: "launch"}, n.Request)
	assert.Equal(t, "postgres", n.Predefs.DB)
	require.Len(t, n.Nodes, 1)
	assert.Equal(t, "child", n.Nodes[0].Name)
}

func TestRegistry_Collections(t *testing.T) {
	t.Parallel()
	doc := `{"json_claz":"Megam::PredefCollection","results":[
		{"json_claz":"Megam::Predef","name":"rails","provider":"chef"},
		{"json_claz":"Megam::Predef","name":"java","provider":"chef"}]}`
	got, err := Registry().Decode([]byte(doc))
	require.NoError(t, err)

	c, ok := got.(*PredefCollection)
	require.True(t, ok, "got %T", got)
	require.Len(t, c.Results, 2)
	assert.Equal(t, "java", c.Results[1].Name)
}

func TestRegistry_ResourceFamily(t *testing.T) {
	t.Parallel()
	doc := `{"json_claz":"Megam::ResourceCollection","resources":[
		{"json_claz":"Megam::Resource::Package","name":"nginx","version":"1.4"},
		{"json_claz":"Megam::Resource::Service","name":"nginx-svc","running":true},
		{"json_claz":"Megam::Resource::File","name":"conf","path":"/etc/nginx.conf","mode":"0644"},
		{"json_claz":"Megam::Resource","name":"plain","attributes":{"k":"v"}}]}`
	got, err := Registry().Decode([]byte(doc))
	require.NoError(t, err)

	c := got.(*ResourceCollection)
	require.Len(t, c.Resources, 4)
	assert.Equal(t, &PackageResource{ResourceBase: ResourceBase{Name: "nginx"}, Version: "1.4"}, c.Resources[0])
	assert.True(t, c.Resources[1].(*ServiceResource).Running)
	assert.Equal(t, "/etc/nginx.conf", c.Resources[2].(*FileResource).Path)
	assert.Equal(t, map[string]any{"k": "v"}, c.Resources[3].(*Resource).Attributes)

	r, ok := c.Lookup("conf")
	require.True(t, ok)
	assert.Equal(t, ClassResource+"::File", r.JSONClass())
	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_UnknownResourceKind(t *testing.T) {
	t.Parallel()
	_, err := Registry().Decode([]byte(`{"json_claz":"Megam::Resource::Cron","name":"x"}`))
	var ue *jsoncompat.UnsupportedTypeError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "Megam::Resource::Cron", ue.Class)
}

func TestRegistry_RoundTrip(t *testing.T) {
	t.Parallel()
	values := []any{
		&Account{ID: "ACT1", Email: "a@megam.co", APIKey: "k", Authority: "admin"},
		&Node{Name: "n1", Nodes: []*Node{{Name: "n2"}}},
		&PredefCloudCollection{Results: []*PredefCloud{{Name: "ec2", Spec: PredefCloudSpec{TypeName: "ec2"}}}},
		&Message{Code: 201, MsgType: "info", Msg: "created"},
		&ResourceCollection{Resources: []ResourceObject{
			&ServiceResource{ResourceBase: ResourceBase{Name: "svc"}, Enabled: true},
			&Resource{ResourceBase: ResourceBase{Name: "r"}},
		}},
	}
	for _, v := range values {
		data, err := jsoncompat.Encode(v)
		require.NoError(t, err)
		got, err := Registry().Decode(data)
		require.NoError(t, err, string(data))
		assert.Equal(t, v, got)
	}
}

func TestRegistry_Classes(t *testing.T) {
	t.Parallel()
	classes := Registry().Classes()
	for _, c := range []string{ClassAccount, ClassNode, ClassPredef, ClassPredefCloud, ClassResource, ClassResourceCollection} {
		assert.Contains(t, classes, c)
	}
}

func TestMessage_IsError(t *testing.T) {
	t.Parallel()
	assert.True(t, (&Message{MsgType: "error"}).IsError())
	assert.True(t, (&Message{Code: 404}).IsError())
	assert.False(t, (&Message{Code: 201, MsgType: "info"}).IsError())
}
