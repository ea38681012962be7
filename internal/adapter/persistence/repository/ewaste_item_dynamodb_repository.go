package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultEWasteItemsTableName = "ewaste_items"

type ewasteItemItem struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id"`
	ItemType          string `dynamodbav:"item_type"`
	Brand             string `dynamodbav:"brand"`
	Model             string `dynamodbav:"model"`
	AgeYears          string `dynamodbav:"age_years"`
	FunctionalStatus  string `dynamodbav:"functional_status"`
	BatteryStatus     string `dynamodbav:"battery_status"`
	ScreenCondition   string `dynamodbav:"screen_condition"`
	MotherboardStatus string `dynamodbav:"motherboard_status"`
	ImageRef          string `dynamodbav:"image_ref"`
	AnalysisResults   string `dynamodbav:"analysis_results"`
	PriceEstimation   string `dynamodbav:"price_estimation"`
	EstimateBasis     string `dynamodbav:"estimate_basis"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// EWasteItemDynamoRepository persists submitted e-waste items.
//
// Table requirements:
//   - PK: id (string, uuid)

type EWasteItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEWasteItemRepository = (*EWasteItemDynamoRepository)(nil)

func NewEWasteItemDynamoRepository(ddb *dynamodb.Client) *EWasteItemDynamoRepository {
	return &EWasteItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EWASTE_ITEMS_TABLE", defaultEWasteItemsTableName),
	}
}

func (r *EWasteItemDynamoRepository) Create(ctx context.Context, item entities.EWasteItem) (entities.EWasteItem, error) {
	av, err := attributevalue.MarshalMap(toEWasteItemItem(item))
	if err != nil {
		return entities.EWasteItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.EWasteItem{}, err
	}
	return item, nil
}

func (r *EWasteItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.EWasteItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EWasteItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.EWasteItem{}, nil
	}

	var it ewasteItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EWasteItem{}, err
	}
	return fromEWasteItemItem(it)
}

func toEWasteItemItem(e entities.EWasteItem) ewasteItemItem {
	return ewasteItemItem{
		ID:                e.ID,
		UserID:            e.UserID,
		ItemType:          e.ItemType,
		Brand:             e.Brand,
		Model:             e.Model,
		AgeYears:          e.AgeYears.String(),
		FunctionalStatus:  string(e.FunctionalStatus),
		BatteryStatus:     string(e.BatteryStatus),
		ScreenCondition:   string(e.ScreenCondition),
		MotherboardStatus: string(e.MotherboardStatus),
		ImageRef:          e.ImageRef,
		AnalysisResults:   string(e.AnalysisResults),
		PriceEstimation:   e.PriceEstimation.String(),
		EstimateBasis:     string(e.EstimateBasis),
		CreatedAt:         e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEWasteItemItem(it ewasteItemItem) (entities.EWasteItem, error) {
	age, err := decimal.NewFromString(it.AgeYears)
	if err != nil {
		return entities.EWasteItem{}, fmt.Errorf("item %s: parse age_years %q: %w", it.ID, it.AgeYears, err)
	}
	price, err := decimal.NewFromString(it.PriceEstimation)
	if err != nil {
		return entities.EWasteItem{}, fmt.Errorf("item %s: parse price_estimation %q: %w", it.ID, it.PriceEstimation, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.EWasteItem{}, fmt.Errorf("item %s: parse created_at %q: %w", it.ID, it.CreatedAt, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if err != nil {
		return entities.EWasteItem{}, fmt.Errorf("item %s: parse updated_at %q: %w", it.ID, it.UpdatedAt, err)
	}

	var analysis json.RawMessage
	if it.AnalysisResults != "" {
		analysis = json.RawMessage(it.AnalysisResults)
	}
	return entities.EWasteItem{
		ID:                it.ID,
		UserID:            it.UserID,
		ItemType:          it.ItemType,
		Brand:             it.Brand,
		Model:             it.Model,
		AgeYears:          age,
		FunctionalStatus:  entities.FunctionalStatus(it.FunctionalStatus),
		BatteryStatus:     entities.ComponentStatus(it.BatteryStatus),
		ScreenCondition:   entities.ComponentStatus(it.ScreenCondition),
		MotherboardStatus: entities.ComponentStatus(it.MotherboardStatus),
		ImageRef:          it.ImageRef,
		AnalysisResults:   analysis,
		PriceEstimation:   price,
		EstimateBasis:     entities.EstimateBasis(it.EstimateBasis),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}
