package database

import (
	"context"
	"errors"
	"testing"

	"plumbing_estimator/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTables struct {
	existing map[string]bool
	created  []string
	describe error
}

func (f *fakeTables) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describe != nil {
		return nil, f.describe
	}
	name := aws.ToString(in.TableName)
	if !f.existing[name] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	f.created = append(f.created, name)
	f.existing[name] = true
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables(t *testing.T) {
	t.Run("creates missing tables", func(t *testing.T) {
		f := &fakeTables{existing: map[string]bool{"services": true}}
		require.NoError(t, EnsureTables(context.Background(), f, "services", "quotes", "kind-created_at-index"))
		assert.Equal(t, []string{"quotes"}, f.created)
	})

	t.Run("leaves existing tables alone", func(t *testing.T) {
		f := &fakeTables{existing: map[string]bool{"services": true, "quotes": true}}
		require.NoError(t, EnsureTables(context.Background(), f, "services", "quotes", "kind-created_at-index"))
		assert.Empty(t, f.created)
	})

	t.Run("describe error", func(t *testing.T) {
		f := &fakeTables{existing: map[string]bool{}, describe: errors.New("access denied")}
		assert.EqualError(t, EnsureTables(context.Background(), f, "services", "quotes", "kind-created_at-index"), "access denied")
		assert.Empty(t, f.created)
	})
}

func TestQuotesTableInput(t *testing.T) {
	in := QuotesTableInput("quotes", "kind-created_at-index")
	require.Len(t, in.GlobalSecondaryIndexes, 1)
	gsi := in.GlobalSecondaryIndexes[0]
	assert.Equal(t, "kind-created_at-index", aws.ToString(gsi.IndexName))
	assert.Equal(t, "kind", aws.ToString(gsi.KeySchema[0].AttributeName))
	assert.Equal(t, types.KeyTypeRange, gsi.KeySchema[1].KeyType)
	assert.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := config.Config{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	}

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}
