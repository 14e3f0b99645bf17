package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	ID             string `dynamodbav:"id"`
	ClientID       string `dynamodbav:"client_id"`
	ProviderID     string `dynamodbav:"provider_id"`
	Status         string `dynamodbav:"status"`
	DurationType   string `dynamodbav:"duration_type"`
	BookingSubType string `dynamodbav:"booking_sub_type"`
	TotalAmount    string `dynamodbav:"total_amount"`
	CreatedAt      string `dynamodbav:"created_at"`
	Raw            string `dynamodbav:"raw"`
}

// BookingDynamoRepository reads booking records written by the booking service.
//
// Table requirements:
//   - PK: id (string)
type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client, tableName string) *BookingDynamoRepository {
	if tableName == "" {
		tableName = defaultBookingsTableName
	}
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func fromBookingItem(it bookingItem) entities.Booking {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := strconv.ParseFloat(it.TotalAmount, 64)
	b := entities.Booking{
		ID:             it.ID,
		ClientID:       it.ClientID,
		ProviderID:     it.ProviderID,
		Status:         it.Status,
		DurationType:   entities.DurationType(it.DurationType),
		BookingSubType: entities.BookingSubType(it.BookingSubType),
		TotalAmount:    amount,
		CreatedAt:      createdAt,
	}
	if it.Raw != "" && json.Valid([]byte(it.Raw)) {
		b.Raw = json.RawMessage(it.Raw)
	}
	return b
}
