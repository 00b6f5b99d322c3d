package repository

import (
	"context"
	"fmt"
	"time"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

const (
	defaultServicesTableName = "services"

	// BatchGetItem accepts at most 100 keys per request.
	batchGetMaxKeys      = 100
	batchGetMaxAttempts  = 5
	batchGetRetryBackoff = 50 * time.Millisecond
)

type serviceItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description *string `dynamodbav:"description,omitempty"`
	Unit        string  `dynamodbav:"unit"`
	Rate        float64 `dynamodbav:"rate"`
	Category    *string `dynamodbav:"category,omitempty"`
}

// ServiceDynamoRepository persists catalog Services in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ServiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) ListAll(ctx context.Context) ([]entities.Service, error) {
	out := []entities.Service{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []serviceItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromServiceItem(it))
		}
	}
	return out, nil
}

// FindByIDs resolves ids with batched reads. Unknown ids are skipped and the
// result follows the order of ids.
func (r *ServiceDynamoRepository) FindByIDs(ctx context.Context, ids []string) ([]entities.Service, error) {
	ids = dedupe(ids)
	byID := make(map[string]entities.Service, len(ids))

	for _, chunk := range chunkStrings(ids, batchGetMaxKeys) {
		keys := make([]map[string]types.AttributeValue, 0, len(chunk))
		for _, id := range chunk {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		found, err := r.batchGet(ctx, keys)
		if err != nil {
			return nil, err
		}
		for _, s := range found {
			byID[s.ID] = s
		}
	}

	return orderByIDs(ids, byID), nil
}

func (r *ServiceDynamoRepository) batchGet(ctx context.Context, keys []map[string]types.AttributeValue) ([]entities.Service, error) {
	var out []entities.Service
	request := map[string]types.KeysAndAttributes{
		r.tableName: {Keys: keys},
	}

	for attempt := 1; len(request) > 0; attempt++ {
		if attempt > batchGetMaxAttempts {
			return nil, fmt.Errorf("batch get on %s: unprocessed keys after %d attempts", r.tableName, batchGetMaxAttempts)
		}
		if attempt > 1 {
			logrus.WithFields(logrus.Fields{"table": r.tableName, "attempt": attempt}).Debug("[catalog][repository] retrying unprocessed keys")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(batchGetRetryBackoff * time.Duration(attempt-1)):
			}
		}

		res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return nil, err
		}

		var items []serviceItem
		if err := attributevalue.UnmarshalListOfMaps(res.Responses[r.tableName], &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromServiceItem(it))
		}
		request = res.UnprocessedKeys
	}
	return out, nil
}

func (r *ServiceDynamoRepository) Count(ctx context.Context) (int, error) {
	total := 0
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Unit:        string(s.Unit),
		Rate:        s.Rate,
		Category:    s.Category,
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Unit:        entities.ServiceUnit(it.Unit),
		Rate:        it.Rate,
		Category:    it.Category,
	}
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func orderByIDs(ids []string, byID map[string]entities.Service) []entities.Service {
	out := make([]entities.Service, 0, len(byID))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}
