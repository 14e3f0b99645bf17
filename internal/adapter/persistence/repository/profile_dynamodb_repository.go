package repository

import (
	"context"
	"fmt"
	"strings"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "profiles"

// ProfileDynamoRepository stores client profiles in DynamoDB.
//
// Table requirements:
//   - PK: client_id (string)
//
// Upsert is a single UpdateItem with one SET clause per key, so attributes
// absent from the update are never touched.
type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client, tableName string) *ProfileDynamoRepository {
	if tableName == "" {
		tableName = defaultProfilesTableName
	}
	return &ProfileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProfileDynamoRepository) Upsert(ctx context.Context, clientID string, fields map[string]any) error {
	updateExpr, names, values, err := buildProfileUpdate(fields, nowString())
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			profileKeyDynamo: &types.AttributeValueMemberS{Value: clientID},
		},
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

func (r *ProfileDynamoRepository) GetByClientID(ctx context.Context, clientID string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			profileKeyDynamo: &types.AttributeValueMemberS{Value: clientID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var doc profileDocument
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileDocument(doc), nil
}

// buildProfileUpdate turns a partial profile into "SET #a = :a, ..." plus the
// updatedAt stamp. Attribute names always go through placeholders since several
// of them are DynamoDB reserved words.
func buildProfileUpdate(fields map[string]any, now string) (string, map[string]string, map[string]types.AttributeValue, error) {
	names := make(map[string]string, len(fields)+1)
	values := make(map[string]types.AttributeValue, len(fields)+1)
	clauses := make([]string, 0, len(fields)+1)

	for i, key := range sortedKeys(fields) {
		if key == profileKeyDynamo {
			continue
		}
		av, err := attributevalue.Marshal(fields[key])
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal %s: %w", key, err)
		}
		name, value := fmt.Sprintf("#f%d", i), fmt.Sprintf(":f%d", i)
		names[name] = key
		values[value] = av
		clauses = append(clauses, name+" = "+value)
	}

	names = mergeNames(names, map[string]string{"#updated_at": profileUpdatedAt})
	values[":updated_at"] = &types.AttributeValueMemberS{Value: now}
	clauses = append(clauses, "#updated_at = :updated_at")

	return "SET " + strings.Join(clauses, ", "), names, values, nil
}
