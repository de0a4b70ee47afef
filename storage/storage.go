package storage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
)

// All dashboard state lives in one table as string-valued entries under a
// single partition; the row key is the logical key (zones, schemaVersion,
// quests). Every write is a full overwrite of one entry.
const partitionKey = "garden"

// Storage is the durable key-value store backing the dashboard.
type Storage struct {
	table *aztables.Client
}

// New creates a Storage instance from the given connection string.
func New(connStr, tableName string) (*Storage, error) {
	clientOptions := aztables.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{
				MaxRetries:    3,
				TryTimeout:    time.Minute * 3,
				RetryDelay:    time.Second * 1,
				MaxRetryDelay: time.Second * 15,
				StatusCodes:   []int{408, 429, 500, 502, 503, 504},
			},
		},
	}
	svc, err := aztables.NewServiceClientFromConnectionString(connStr, &clientOptions)
	if err != nil {
		return nil, err
	}
	return &Storage{table: svc.NewClient(tableName)}, nil
}

type kvEntity struct {
	aztables.Entity
	Value string `json:"Value"`
}

// Get reads the value stored under key. The second return is false when
// no entry exists.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	resp, err := s.table.GetEntity(ctx, partitionKey, key, nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	var ent kvEntity
	if err := json.Unmarshal(resp.Value, &ent); err != nil {
		return "", false, err
	}
	return ent.Value, true, nil
}

// Set overwrites the value stored under key.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	ent := kvEntity{
		Entity: aztables.Entity{PartitionKey: partitionKey, RowKey: key},
		Value:  value,
	}
	data, err := json.Marshal(ent)
	if err != nil {
		return err
	}
	_, err = s.table.UpsertEntity(ctx, data, &aztables.UpsertEntityOptions{
		UpdateMode: aztables.UpdateModeReplace,
	})
	return err
}
