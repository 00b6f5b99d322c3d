package repository

import (
	"context"

	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// TableInspector lists the tables visible to the configured credentials.
type TableInspector struct {
	ddb DynamoAPI
}

var _ interfaces.IStoreInspector = (*TableInspector)(nil)

func NewTableInspector(ddb DynamoAPI) *TableInspector {
	return &TableInspector{ddb: ddb}
}

func (i *TableInspector) ListTables(ctx context.Context, max int) ([]string, error) {
	in := &dynamodb.ListTablesInput{}
	if max > 0 {
		in.Limit = aws.Int32(int32(max))
	}
	out, err := i.ddb.ListTables(ctx, in)
	if err != nil {
		return nil, err
	}
	if out.TableNames == nil {
		return []string{}, nil
	}
	return out.TableNames, nil
}
