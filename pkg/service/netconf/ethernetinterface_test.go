// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package netconf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfabric/netfabric-sdk-go/pkg/api"
	model "github.com/netfabric/netfabric-sdk-go/pkg/api/model/netconf"
)

func interfaceCreateFixture() *model.EthernetInterfaceCreate {
	return &model.EthernetInterfaceCreate{
		EthernetInterfaceSpec: model.EthernetInterfaceSpec{
			Name:   "ethernet1/1",
			Tap:    &model.Tap{},
			Folder: model.String("Texas"),
		},
	}
}

func interfaceJSON(id, name, folder string) string {
	return fmt.Sprintf(`{"id": %q, "name": %q, "folder": %q}`, id, name, folder)
}

func TestEthernetInterfaceService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		tr := &fakeTransport{
			postFn: func(path string, body any) ([]byte, error) {
				assert.Equal(t, EthernetInterfaceEndpoint, path)
				assert.IsType(t, &model.EthernetInterfaceCreate{}, body)
				return []byte(interfaceJSON(id, "ethernet1/1", "Texas")), nil
			},
		}
		svc, err := NewEthernetInterfaceService(tr)
		require.NoError(t, err)

		created, err := svc.Create(context.Background(), interfaceCreateFixture())
		require.NoError(t, err)
		assert.Equal(t, id, created.ID.String())
		assert.Equal(t, "ethernet1/1", created.Name)
	})

	t.Run("validation failure never reaches the transport", func(t *testing.T) {
		tr := &fakeTransport{
			postFn: func(path string, body any) ([]byte, error) {
				t.Fatal("transport must not be called")
				return nil, nil
			},
		}
		svc, err := NewEthernetInterfaceService(tr)
		require.NoError(t, err)

		in := interfaceCreateFixture()
		in.Tap = nil

		_, err = svc.Create(context.Background(), in)
		require.Error(t, err)
		var invalidErr *api.InvalidObjectError
		require.ErrorAs(t, err, &invalidErr)
		assert.Contains(t, err.Error(), "exactly one interface mode must be specified")
	})
}

func TestEthernetInterfaceService_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		tr := &fakeTransport{
			getFn: func(path string, query url.Values) ([]byte, error) {
				assert.Equal(t, EthernetInterfaceEndpoint+"/"+id, path)
				assert.Empty(t, query)
				return []byte(interfaceJSON(id, "ethernet1/1", "Texas")), nil
			},
		}
		svc, err := NewEthernetInterfaceService(tr)
		require.NoError(t, err)

		iface, err := svc.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, iface.ID.String())
	})

	t.Run("empty id", func(t *testing.T) {
		svc, err := NewEthernetInterfaceService(&fakeTransport{})
		require.NoError(t, err)

		_, err = svc.GetByID(context.Background(), "")
		var missingErr *api.MissingQueryParameterError
		require.ErrorAs(t, err, &missingErr)
	})
}

func TestEthernetInterfaceService_Update(t *testing.T) {
	id := uuid.New()
	tr := &fakeTransport{
		putFn: func(path string, body any) ([]byte, error) {
			assert.Equal(t, EthernetInterfaceEndpoint+"/"+id.String(), path)

			// The object ID addresses the resource in the path only.
			payload, err := json.Marshal(body)
			require.NoError(t, err)
			assert.NotContains(t, string(payload), id.String())

			return []byte(interfaceJSON(id.String(), "ethernet1/1", "Texas")), nil
		},
	}
	svc, err := NewEthernetInterfaceService(tr)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), &model.EthernetInterfaceUpdate{
		ID: id,
		EthernetInterfaceSpec: model.EthernetInterfaceSpec{
			Name:    "ethernet1/1",
			Tap:     &model.Tap{},
			Comment: model.String("updated"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
}

func TestEthernetInterfaceService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		called := false
		tr := &fakeTransport{
			deleteFn: func(path string) ([]byte, error) {
				called = true
				assert.Equal(t, EthernetInterfaceEndpoint+"/"+id, path)
				return nil, nil
			},
		}
		svc, err := NewEthernetInterfaceService(tr)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), id))
		assert.True(t, called)
	})

	t.Run("empty id", func(t *testing.T) {
		svc, err := NewEthernetInterfaceService(&fakeTransport{})
		require.NoError(t, err)

		err = svc.Delete(context.Background(), "")
		var missingErr *api.MissingQueryParameterError
		require.ErrorAs(t, err, &missingErr)
	})
}

func TestEthernetInterfaceService_List(t *testing.T) {
	t.Run("walks every page", func(t *testing.T) {
		var queries []url.Values
		tr := &fakeTransport{
			getFn: func(path string, query url.Values) ([]byte, error) {
				assert.Equal(t, EthernetInterfaceEndpoint, path)
				queries = append(queries, query)

				// Two full pages then a short one.
				switch query.Get("offset") {
				case "0":
					return []byte(fmt.Sprintf(`{"data": [%s, %s]}`,
						interfaceJSON(uuid.NewString(), "eth1", "Texas"),
						interfaceJSON(uuid.NewString(), "eth2", "Texas"))), nil
				case "2":
					return []byte(fmt.Sprintf(`{"data": [%s, %s]}`,
						interfaceJSON(uuid.NewString(), "eth3", "Texas"),
						interfaceJSON(uuid.NewString(), "eth4", "Texas"))), nil
				default:
					return []byte(fmt.Sprintf(`{"data": [%s]}`,
						interfaceJSON(uuid.NewString(), "eth5", "Texas"))), nil
				}
			},
		}
		svc, err := NewEthernetInterfaceService(tr, WithMaxLimit(2))
		require.NoError(t, err)

		interfaces, err := svc.List(context.Background(), ListOptions{Folder: model.String("Texas")})
		require.NoError(t, err)
		assert.Len(t, interfaces, 5)
		require.Len(t, queries, 3)

		for i, q := range queries {
			assert.Equal(t, "Texas", q.Get("folder"))
			assert.Equal(t, "2", q.Get("limit"))
			assert.Equal(t, fmt.Sprintf("%d", i*2), q.Get("offset"))
		}
	})

	t.Run("single short page", func(t *testing.T) {
		calls := 0
		tr := &fakeTransport{
			getFn: func(path string, query url.Values) ([]byte, error) {
				calls++
				return []byte(fmt.Sprintf(`{"data": [%s]}`,
					interfaceJSON(uuid.NewString(), "eth1", "Texas"))), nil
			},
		}
		svc, err := NewEthernetInterfaceService(tr)
		require.NoError(t, err)

		interfaces, err := svc.List(context.Background(), ListOptions{Folder: model.String("Texas")})
		require.NoError(t, err)
		assert.Len(t, interfaces, 1)
		assert.Equal(t, 1, calls)
	})

	t.Run("exact match drops inherited objects", func(t *testing.T) {
		tr := &fakeTransport{
			getFn: func(path string, query url.Values) ([]byte, error) {
				return []byte(fmt.Sprintf(`{"data": [%s, %s]}`,
					interfaceJSON(uuid.NewString(), "eth1", "Texas"),
					interfaceJSON(uuid.NewString(), "eth2", "All"))), nil
			},
		}
		svc, err := NewEthernetInterfaceService(tr)
		require.NoError(t, err)

		interfaces, err := svc.List(context.Background(), ListOptions{
			Folder:     model.String("Texas"),
			ExactMatch: true,
		})
		require.NoError(t, err)
		require.Len(t, interfaces, 1)
		assert.Equal(t, "eth1", interfaces[0].Name)
	})

	t.Run("exclusion filters", func(t *testing.T) {
		tr := &fakeTransport{
			getFn: func(path string, query url.Values) ([]byte, error) {
				return []byte(fmt.Sprintf(`{"data": [%s, %s, %s]}`,
					interfaceJSON(uuid.NewString(), "eth1", "Texas"),
					interfaceJSON(uuid.NewString(), "eth2", "All"),
					interfaceJSON(uuid.NewString(), "eth3", "Staging"))), nil
			},
		}
		svc, err := NewEthernetInterfaceService(tr)
		require.NoError(t, err)

		interfaces, err := svc.List(context.Background(), ListOptions{
			Folder:         model.String("Texas"),
			ExcludeFolders: []string{"All", "Staging"},
		})
		require.NoError(t, err)
		require.Len(t, interfaces, 1)
		assert.Equal(t, "eth1", interfaces[0].Name)
	})

	t.Run("container errors", func(t *testing.T) {
		svc, err := NewEthernetInterfaceService(&fakeTransport{})
		require.NoError(t, err)

		_, err = svc.List(context.Background(), ListOptions{})
		var invalidErr *api.InvalidObjectError
		require.ErrorAs(t, err, &invalidErr)
		assert.Contains(t, err.Error(), "Invalid container parameters")

		_, err = svc.List(context.Background(), ListOptions{Folder: model.String("")})
		var missingErr *api.MissingQueryParameterError
		require.ErrorAs(t, err, &missingErr)
	})
}

func TestEthernetInterfaceService_Fetch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tr := &fakeTransport{
			getFn: func(path string, query url.Values) ([]byte, error) {
				assert.Equal(t, EthernetInterfaceEndpoint, path)
				assert.Equal(t, "eth1", query.Get("name"))
				assert.Equal(t, "Texas", query.Get("folder"))
				return []byte(fmt.Sprintf(`{"data": [%s]}`,
					interfaceJSON(uuid.NewString(), "eth1", "Texas"))), nil
			},
		}
		svc, err := NewEthernetInterfaceService(tr)
		require.NoError(t, err)

		iface, err := svc.Fetch(context.Background(), "eth1", ListOptions{Folder: model.String("Texas")})
		require.NoError(t, err)
		assert.Equal(t, "eth1", iface.Name)
	})

	t.Run("not found", func(t *testing.T) {
		tr := &fakeTransport{
			getFn: func(path string, query url.Values) ([]byte, error) {
				return []byte(`{"data": []}`), nil
			},
		}
		svc, err := NewEthernetInterfaceService(tr)
		require.NoError(t, err)

		_, err = svc.Fetch(context.Background(), "missing", ListOptions{Folder: model.String("Texas")})
		var notPresent *api.ObjectNotPresentError
		require.ErrorAs(t, err, &notPresent)
	})

	t.Run("empty name", func(t *testing.T) {
		svc, err := NewEthernetInterfaceService(&fakeTransport{})
		require.NoError(t, err)

		_, err = svc.Fetch(context.Background(), "", ListOptions{Folder: model.String("Texas")})
		var missingErr *api.MissingQueryParameterError
		require.ErrorAs(t, err, &missingErr)
		assert.Contains(t, err.Error(), `"name" is not allowed to be empty`)
	})
}

func TestEthernetInterfaceService_MaxLimit(t *testing.T) {
	svc, err := NewEthernetInterfaceService(&fakeTransport{})
	require.NoError(t, err)
	assert.Equal(t, 2500, svc.MaxLimit())

	svc, err = NewEthernetInterfaceService(&fakeTransport{}, WithMaxLimit(100))
	require.NoError(t, err)
	assert.Equal(t, 100, svc.MaxLimit())

	_, err = NewEthernetInterfaceService(&fakeTransport{}, WithMaxLimit(5001))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_limit exceeds maximum allowed value")
}
