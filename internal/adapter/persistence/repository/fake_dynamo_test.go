package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records inputs and serves canned outputs.
type fakeDynamo struct {
	putInputs   []*dynamodb.PutItemInput
	putErr      error
	getItem     map[string]types.AttributeValue
	scanPages   []*dynamodb.ScanOutput
	scanInputs  []*dynamodb.ScanInput
	queryPages  []*dynamodb.QueryOutput
	queryInputs []*dynamodb.QueryInput
	tables      []string

	// items served by BatchGetItem, keyed by id.
	batchItems map[string]map[string]types.AttributeValue
	// ids reported as unprocessed on the first BatchGetItem call only.
	unprocessedOnce map[string]bool
	batchInputs     []*dynamodb.BatchGetItemInput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanInputs = append(f.scanInputs, in)
	i := len(f.scanInputs) - 1
	if i >= len(f.scanPages) {
		return nil, errors.New("unexpected scan")
	}
	return f.scanPages[i], nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	cp := *in
	f.queryInputs = append(f.queryInputs, &cp)
	i := len(f.queryInputs) - 1
	if i >= len(f.queryPages) {
		return nil, errors.New("unexpected query")
	}
	return f.queryPages[i], nil
}

func (f *fakeDynamo) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	f.batchInputs = append(f.batchInputs, in)
	out := &dynamodb.BatchGetItemOutput{
		Responses:       map[string][]map[string]types.AttributeValue{},
		UnprocessedKeys: map[string]types.KeysAndAttributes{},
	}
	for table, ka := range in.RequestItems {
		var pending []map[string]types.AttributeValue
		for _, key := range ka.Keys {
			id := key["id"].(*types.AttributeValueMemberS).Value
			if f.unprocessedOnce[id] {
				delete(f.unprocessedOnce, id)
				pending = append(pending, key)
				continue
			}
			if item, ok := f.batchItems[id]; ok {
				out.Responses[table] = append(out.Responses[table], item)
			}
		}
		if len(pending) > 0 {
			out.UnprocessedKeys[table] = types.KeysAndAttributes{Keys: pending}
		}
	}
	return out, nil
}

func (f *fakeDynamo) ListTables(_ context.Context, in *dynamodb.ListTablesInput, _ ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	names := f.tables
	if in.Limit != nil && int(*in.Limit) < len(names) {
		names = names[:*in.Limit]
	}
	return &dynamodb.ListTablesOutput{TableNames: names}, nil
}
