package repository

import (
	"context"
	"math"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"

	// QuotesRecentIndex is the GSI used to list quotes by creation time.
	QuotesRecentIndex = "kind-created_at-index"
	quoteKind         = "quote"
)

type quoteLineItem struct {
	ServiceID   string  `dynamodbav:"service_id"`
	ServiceName string  `dynamodbav:"service_name"`
	Unit        string  `dynamodbav:"unit"`
	Quantity    float64 `dynamodbav:"quantity"`
	Rate        float64 `dynamodbav:"rate"`
	Cost        float64 `dynamodbav:"cost"`
}

type quoteItem struct {
	ID                 string          `dynamodbav:"id"`
	Kind               string          `dynamodbav:"kind"`
	ProjectName        string          `dynamodbav:"project_name"`
	AreaSqm            float64         `dynamodbav:"area_sqm"`
	Fixtures           int             `dynamodbav:"fixtures"`
	SelectedServiceIDs []string        `dynamodbav:"selected_service_ids"`
	LocationFactor     float64         `dynamodbav:"location_factor"`
	Items              []quoteLineItem `dynamodbav:"items"`
	Subtotal           float64         `dynamodbav:"subtotal"`
	Overhead           float64         `dynamodbav:"overhead"`
	Tax                float64         `dynamodbav:"tax"`
	Total              float64         `dynamodbav:"total"`
	CreatedAt          string          `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI kind-created_at-index: kind (PK, constant "quote") + created_at (SK,
//     RFC3339Nano UTC, so lexical order is chronological)
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Quote, error) {
	out := []entities.Quote{}
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(QuotesRecentIndex),
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": "kind",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: quoteKind},
		},
		ScanIndexForward: aws.Bool(false),
	}

	for {
		if limit > 0 {
			in.Limit = aws.Int32(pageLimit(limit - len(out)))
		}
		page, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromQuoteItem(it))
		}

		if len(page.LastEvaluatedKey) == 0 || (limit > 0 && len(out) >= limit) {
			break
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, 0, len(q.Items))
	for _, it := range q.Items {
		lines = append(lines, quoteLineItem{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Unit:        string(it.Unit),
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Cost:        it.Cost,
		})
	}
	selected := q.SelectedServiceIDs
	if selected == nil {
		selected = []string{}
	}

	return quoteItem{
		ID:                 q.ID,
		Kind:               quoteKind,
		ProjectName:        q.ProjectName,
		AreaSqm:            q.AreaSqm,
		Fixtures:           q.Fixtures,
		SelectedServiceIDs: selected,
		LocationFactor:     q.LocationFactor,
		Items:              lines,
		Subtotal:           q.Subtotal,
		Overhead:           q.Overhead,
		Tax:                q.Tax,
		Total:              q.Total,
		CreatedAt:          formatTime(q.CreatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.QuoteItem{
			ServiceID:   li.ServiceID,
			ServiceName: li.ServiceName,
			Unit:        entities.ServiceUnit(li.Unit),
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			Cost:        li.Cost,
		})
	}
	selected := it.SelectedServiceIDs
	if selected == nil {
		selected = []string{}
	}

	return entities.Quote{
		ID:                 it.ID,
		ProjectName:        it.ProjectName,
		AreaSqm:            it.AreaSqm,
		Fixtures:           it.Fixtures,
		SelectedServiceIDs: selected,
		LocationFactor:     it.LocationFactor,
		Items:              items,
		Subtotal:           it.Subtotal,
		Overhead:           it.Overhead,
		Tax:                it.Tax,
		Total:              it.Total,
		CreatedAt:          parseTime(it.CreatedAt),
	}
}

// pageLimit caps a remaining count to the largest Limit a Query accepts.
func pageLimit(remaining int) int32 {
	if remaining > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(remaining)
}
