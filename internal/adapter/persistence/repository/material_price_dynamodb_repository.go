package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

const defaultMaterialPricesTableName = "material_prices"

type materialPriceItem struct {
	Material     string `dynamodbav:"material_name"`
	PricePerGram string `dynamodbav:"price_per_gram"`
	LastUpdated  string `dynamodbav:"last_updated"`
}

// MaterialPriceDynamoRepository persists per-gram material prices.
//
// Table requirements:
//   - PK: material_name (string)
//
// Rows are upserted by the external market feed or through the admin price
// override; the pricing paths only read.

type MaterialPriceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialPriceRepository = (*MaterialPriceDynamoRepository)(nil)

func NewMaterialPriceDynamoRepository(ddb *dynamodb.Client) *MaterialPriceDynamoRepository {
	return &MaterialPriceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIAL_PRICES_TABLE", defaultMaterialPricesTableName),
	}
}

func (r *MaterialPriceDynamoRepository) GetAll(ctx context.Context) ([]entities.MaterialPrice, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	prices := make([]entities.MaterialPrice, 0, len(out.Items))
	for _, item := range out.Items {
		var it materialPriceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(it.PricePerGram)
		if err != nil {
			return nil, fmt.Errorf("material %s: parse price_per_gram %q: %w", it.Material, it.PricePerGram, err)
		}
		lastUpdated, err := time.Parse(time.RFC3339Nano, it.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("material %s: parse last_updated %q: %w", it.Material, it.LastUpdated, err)
		}
		prices = append(prices, entities.MaterialPrice{
			Material:     entities.Material(it.Material),
			PricePerGram: price,
			LastUpdated:  lastUpdated,
		})
	}
	return prices, nil
}

func (r *MaterialPriceDynamoRepository) Upsert(ctx context.Context, price entities.MaterialPrice) (entities.MaterialPrice, error) {
	price.LastUpdated = time.Now().UTC()
	av, err := attributevalue.MarshalMap(materialPriceItem{
		Material:     string(price.Material),
		PricePerGram: price.PricePerGram.String(),
		LastUpdated:  price.LastUpdated.Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.MaterialPrice{}, err
	}

	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.MaterialPrice{}, err
	}
	return price, nil
}
