package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultBrandsTableName     = "device_brands"
	defaultModelsTableName     = "device_models"
	defaultComponentsTableName = "device_model_components"
	defaultHistoryTableName    = "price_history"

	modelKeyMarkerPrefix = "key#"
)

type brandItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	DeviceType string `dynamodbav:"device_type"`
}

type modelItem struct {
	ID          string `dynamodbav:"id"`
	ModelKey    string `dynamodbav:"model_key"`
	BrandID     string `dynamodbav:"brand_id"`
	BrandName   string `dynamodbav:"brand_name"`
	Name        string `dynamodbav:"name"`
	DeviceType  string `dynamodbav:"device_type"`
	BasePrice   string `dynamodbav:"base_price"`
	ReleaseYear int    `dynamodbav:"release_year"`
}

type componentItem struct {
	ID            string `dynamodbav:"id"`
	DeviceModelID string `dynamodbav:"device_model_id"`
	Component     string `dynamodbav:"component_name"`
	Material      string `dynamodbav:"material_name"`
	WeightGrams   string `dynamodbav:"weight_grams"`
	Fraction      string `dynamodbav:"fraction"`
}

type priceHistoryItem struct {
	ID              string `dynamodbav:"id"`
	DeviceModelID   string `dynamodbav:"device_model_id"`
	BasePrice       string `dynamodbav:"base_price"`
	MarketCondition string `dynamodbav:"market_condition"`
	Notes           string `dynamodbav:"notes"`
	RecordedAt      string `dynamodbav:"recorded_at"`
}

// DeviceCatalogDynamoRepository persists the device catalog in DynamoDB.
//
// Table requirements (all PK: id, string):
//   - brands: id is the natural key "<device_type>#<name>", so a conditional
//     put is enough to keep (name, device_type) unique under concurrency.
//   - models: id is a uuid; a marker item "key#<brand_id>#<name>" in the same
//     table reserves the natural key, so duplicate (brand, name) rows cannot
//     be created by concurrent writers.

type DeviceCatalogDynamoRepository struct {
	ddb             *dynamodb.Client
	brandsTable     string
	modelsTable     string
	componentsTable string
	historyTable    string
}

var _ interfaces.IDeviceCatalogRepository = (*DeviceCatalogDynamoRepository)(nil)

func NewDeviceCatalogDynamoRepository(ddb *dynamodb.Client) *DeviceCatalogDynamoRepository {
	return &DeviceCatalogDynamoRepository{
		ddb:             ddb,
		brandsTable:     getenvDefault("BRANDS_TABLE", defaultBrandsTableName),
		modelsTable:     getenvDefault("MODELS_TABLE", defaultModelsTableName),
		componentsTable: getenvDefault("COMPONENTS_TABLE", defaultComponentsTableName),
		historyTable:    getenvDefault("PRICE_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *DeviceCatalogDynamoRepository) ListBrands(ctx context.Context, deviceType entities.DeviceType) ([]entities.DeviceBrand, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.brandsTable),
		FilterExpression:         aws.String("#device_type = :dt"),
		ExpressionAttributeNames: map[string]string{"#device_type": "device_type"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dt": &types.AttributeValueMemberS{Value: string(deviceType)},
		},
	})
	if err != nil {
		return nil, err
	}

	brands := make([]entities.DeviceBrand, 0, len(out.Items))
	for _, item := range out.Items {
		var it brandItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		brands = append(brands, entities.DeviceBrand{
			ID:         it.ID,
			Name:       it.Name,
			DeviceType: entities.DeviceType(it.DeviceType),
		})
	}
	return brands, nil
}

// EnsureBrand creates the brand if its natural key is free; a concurrent or
// earlier creation is not an error, the existing row is returned.
func (r *DeviceCatalogDynamoRepository) EnsureBrand(ctx context.Context, brand entities.DeviceBrand) (entities.DeviceBrand, error) {
	av, err := attributevalue.MarshalMap(brandItem{
		ID:         brand.ID,
		Name:       brand.Name,
		DeviceType: string(brand.DeviceType),
	})
	if err != nil {
		return entities.DeviceBrand{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.brandsTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.DeviceBrand{}, err
		}
	}
	return brand, nil
}

func (r *DeviceCatalogDynamoRepository) ListModels(ctx context.Context, deviceType entities.DeviceType, brandName string) ([]entities.DeviceModel, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.modelsTable),
		FilterExpression: aws.String("#device_type = :dt AND #brand_name = :brand"),
		ExpressionAttributeNames: map[string]string{
			"#device_type": "device_type",
			"#brand_name":  "brand_name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dt":    &types.AttributeValueMemberS{Value: string(deviceType)},
			":brand": &types.AttributeValueMemberS{Value: brandName},
		},
	})
	if err != nil {
		return nil, err
	}

	models := make([]entities.DeviceModel, 0, len(out.Items))
	for _, item := range out.Items {
		var it modelItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		if it.Name == "" {
			continue // natural-key marker item
		}
		model, err := fromModelItem(it)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, nil
}

func (r *DeviceCatalogDynamoRepository) GetModelByID(ctx context.Context, id string) (entities.DeviceModel, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.modelsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DeviceModel{}, err
	}
	if len(out.Item) == 0 {
		return entities.DeviceModel{}, nil
	}

	var it modelItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DeviceModel{}, err
	}
	return fromModelItem(it)
}

// EnsureModel reserves the natural key with a conditional marker put, then
// writes the model row. When the key is already taken the existing model is
// returned instead of creating a duplicate.
func (r *DeviceCatalogDynamoRepository) EnsureModel(ctx context.Context, model entities.DeviceModel) (entities.DeviceModel, error) {
	modelKey := entities.ModelKey(model.BrandID, model.Name)
	markerID := modelKeyMarkerPrefix + modelKey

	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.modelsTable),
		Item: map[string]types.AttributeValue{
			"id":        &types.AttributeValueMemberS{Value: markerID},
			"model_key": &types.AttributeValueMemberS{Value: modelKey},
			"model_id":  &types.AttributeValueMemberS{Value: model.ID},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.DeviceModel{}, err
		}
		return r.getModelByMarker(ctx, markerID)
	}

	it := toModelItem(model)
	it.ModelKey = modelKey
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DeviceModel{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.modelsTable),
		Item:      av,
	}); err != nil {
		return entities.DeviceModel{}, err
	}
	return model, nil
}

func (r *DeviceCatalogDynamoRepository) getModelByMarker(ctx context.Context, markerID string) (entities.DeviceModel, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.modelsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: markerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DeviceModel{}, err
	}
	if len(out.Item) == 0 {
		return entities.DeviceModel{}, nil
	}

	var marker struct {
		ModelID string `dynamodbav:"model_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return entities.DeviceModel{}, err
	}
	return r.GetModelByID(ctx, marker.ModelID)
}

// UpdateBasePrice sets a new base price and records a price history row, the
// way an administrative market adjustment is expected to be audited.
func (r *DeviceCatalogDynamoRepository) UpdateBasePrice(ctx context.Context, id string, newPrice decimal.Decimal) (entities.DeviceModel, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.modelsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #base_price = :base_price"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#base_price": "base_price",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":base_price": &types.AttributeValueMemberS{Value: newPrice.String()},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DeviceModel{}, nil
		}
		return entities.DeviceModel{}, err
	}

	var it modelItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DeviceModel{}, err
	}

	history := priceHistoryItem{
		ID:              uuid.NewString(),
		DeviceModelID:   id,
		BasePrice:       newPrice.String(),
		MarketCondition: "Normal",
		Notes:           "Automatic price history entry",
		RecordedAt:      time.Now().UTC().Format(time.RFC3339Nano),
	}
	hav, err := attributevalue.MarshalMap(history)
	if err != nil {
		return entities.DeviceModel{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.historyTable),
		Item:      hav,
	}); err != nil {
		return entities.DeviceModel{}, err
	}

	return fromModelItem(it)
}

func (r *DeviceCatalogDynamoRepository) ListComponents(ctx context.Context, deviceModelID string) ([]entities.DeviceModelComponent, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.componentsTable),
		FilterExpression:         aws.String("#device_model_id = :model"),
		ExpressionAttributeNames: map[string]string{"#device_model_id": "device_model_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":model": &types.AttributeValueMemberS{Value: deviceModelID},
		},
	})
	if err != nil {
		return nil, err
	}

	components := make([]entities.DeviceModelComponent, 0, len(out.Items))
	for _, item := range out.Items {
		var it componentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		weight, err := decimal.NewFromString(it.WeightGrams)
		if err != nil {
			return nil, fmt.Errorf("component %s: parse weight_grams %q: %w", it.ID, it.WeightGrams, err)
		}
		fraction, err := decimal.NewFromString(it.Fraction)
		if err != nil {
			return nil, fmt.Errorf("component %s: parse fraction %q: %w", it.ID, it.Fraction, err)
		}
		components = append(components, entities.DeviceModelComponent{
			ID:            it.ID,
			DeviceModelID: it.DeviceModelID,
			Component:     it.Component,
			Material:      entities.Material(it.Material),
			WeightGrams:   weight,
			Fraction:      fraction,
		})
	}
	return components, nil
}

func (r *DeviceCatalogDynamoRepository) ListPriceHistory(ctx context.Context, deviceModelID string) ([]entities.PriceHistory, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.historyTable),
		FilterExpression:         aws.String("#device_model_id = :model"),
		ExpressionAttributeNames: map[string]string{"#device_model_id": "device_model_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":model": &types.AttributeValueMemberS{Value: deviceModelID},
		},
	})
	if err != nil {
		return nil, err
	}

	history := make([]entities.PriceHistory, 0, len(out.Items))
	for _, item := range out.Items {
		var it priceHistoryItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(it.BasePrice)
		if err != nil {
			return nil, fmt.Errorf("price history %s: parse base_price %q: %w", it.ID, it.BasePrice, err)
		}
		recordedAt, err := time.Parse(time.RFC3339Nano, it.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("price history %s: parse recorded_at %q: %w", it.ID, it.RecordedAt, err)
		}
		history = append(history, entities.PriceHistory{
			ID:              it.ID,
			DeviceModelID:   it.DeviceModelID,
			BasePrice:       price,
			MarketCondition: it.MarketCondition,
			Notes:           it.Notes,
			RecordedAt:      recordedAt,
		})
	}
	return history, nil
}

func toModelItem(m entities.DeviceModel) modelItem {
	return modelItem{
		ID:          m.ID,
		BrandID:     m.BrandID,
		BrandName:   m.BrandName,
		Name:        m.Name,
		DeviceType:  string(m.DeviceType),
		BasePrice:   m.BasePrice.String(),
		ReleaseYear: m.ReleaseYear,
	}
}

// fromModelItem rejects corrupt stored attributes instead of defaulting them;
// a zero base price must never leak into pricing.
func fromModelItem(it modelItem) (entities.DeviceModel, error) {
	price, err := decimal.NewFromString(it.BasePrice)
	if err != nil {
		return entities.DeviceModel{}, fmt.Errorf("model %s: parse base_price %q: %w", it.ID, it.BasePrice, err)
	}
	return entities.DeviceModel{
		ID:          it.ID,
		BrandID:     it.BrandID,
		BrandName:   it.BrandName,
		Name:        it.Name,
		DeviceType:  entities.DeviceType(it.DeviceType),
		BasePrice:   price,
		ReleaseYear: it.ReleaseYear,
	}, nil
}
