package api

import (
	"reflect"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rpcRe      = regexp.MustCompile(`rpc (\w+)\((\w+)\) returns \((\w+)\);`)
	messageRe  = regexp.MustCompile(`(?s)message (\w+) \{(.*?)\n?\}`)
	jsonNameRe = regexp.MustCompile(`json_name = "(\w+)"`)
)

func TestSchema_RPCsMatchServiceDesc(t *testing.T) {
	require.Contains(t, Schema, "package storefront.v1;")
	require.Contains(t, Schema, "service StorefrontService {")
	assert.Equal(t, "storefront.v1.StorefrontService", ServiceDesc.ServiceName)

	rpcs := rpcRe.FindAllStringSubmatch(Schema, -1)
	require.Len(t, rpcs, len(ServiceDesc.Methods))

	server := reflect.TypeOf((*StorefrontServer)(nil)).Elem()
	for i, rpc := range rpcs {
		name, in, out := rpc[1], rpc[2], rpc[3]
		assert.Equal(t, name, ServiceDesc.Methods[i].MethodName)

		m, ok := server.MethodByName(name)
		require.True(t, ok, "StorefrontServer has no %s", name)
		assert.Equal(t, in, m.Type.In(1).Elem().Name(), name)
		assert.Equal(t, out, m.Type.Out(0).Elem().Name(), name)
	}
}

func TestSchema_JSONNamesMatchGoTags(t *testing.T) {
	types := map[string]reflect.Type{}
	for _, v := range []any{
		RegisterRequest{}, RegisterResponse{}, LoginRequest{}, LoginResponse{},
		GetProfileRequest{}, Profile{}, GetProfileResponse{},
		UpdateProfileRequest{}, UpdateProfileResponse{},
		CreateStoreRequest{}, CreateStoreResponse{},
		AddCategoryRequest{}, AddCategoryResponse{},
		ListCategoriesRequest{}, Category{}, ListCategoriesResponse{},
	} {
		rt := reflect.TypeOf(v)
		types[rt.Name()] = rt
	}

	messages := messageRe.FindAllStringSubmatch(Schema, -1)
	require.Len(t, messages, len(types))

	for _, msg := range messages {
		rt, ok := types[msg[1]]
		require.True(t, ok, "no Go type for message %s", msg[1])

		var want []string
		for _, m := range jsonNameRe.FindAllStringSubmatch(msg[2], -1) {
			want = append(want, m[1])
		}

		var got []string
		for i := 0; i < rt.NumField(); i++ {
			tag, _, _ := strings.Cut(rt.Field(i).Tag.Get("json"), ",")
			got = append(got, tag)
		}

		sort.Strings(want)
		sort.Strings(got)
		assert.Equal(t, want, got, msg[1])
	}
}
