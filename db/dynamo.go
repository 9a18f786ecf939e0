package db

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"

	"storefront-voting/config"
	"storefront-voting/constant"
	"storefront-voting/model"
)

const (
	incrementExpression = "SET " + constant.ATTR_VISIT_COUNT + " = if_not_exists(" + constant.ATTR_VISIT_COUNT + ", :start) + :inc"
	scanProjection      = constant.ATTR_POSTAL_CODE + ", " + constant.ATTR_VISIT_COUNT
)

type DynamoStore struct {
	svc dynamodbiface.DynamoDBAPI
}

func NewDynamoStore(svc dynamodbiface.DynamoDBAPI) *DynamoStore {
	return &DynamoStore{svc: svc}
}

// NewDynamoClient falls back to the default credential chain when no static
// keys are configured. DYNAMODB_ENDPOINT points it at DynamoDB Local.
func NewDynamoClient(configuration config.Configuration) (*dynamodb.DynamoDB, error) {
	cfg := aws.NewConfig()
	if configuration.AWS_REGION != "" {
		cfg = cfg.WithRegion(configuration.AWS_REGION)
	}
	if configuration.AWS_ACCESS_KEY_ID != "" {
		creds := credentials.NewStaticCredentials(configuration.AWS_ACCESS_KEY_ID, configuration.AWS_SECRET_ACCESS_KEY, "")
		cfg = cfg.WithCredentials(creds)
	}
	if configuration.DYNAMODB_ENDPOINT != "" {
		cfg = cfg.WithEndpoint(configuration.DYNAMODB_ENDPOINT)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}
	return dynamodb.New(sess), nil
}

func (s *DynamoStore) Increment(ctx context.Context, table string, postalCode model.PostalCode) (int64, error) {
	out, err := s.svc.UpdateItemWithContext(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]*dynamodb.AttributeValue{
			constant.ATTR_POSTAL_CODE: {S: aws.String(postalCode.String())},
		},
		UpdateExpression: aws.String(incrementExpression),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":inc":   {N: aws.String("1")},
			":start": {N: aws.String("0")},
		},
		ReturnValues: aws.String(dynamodb.ReturnValueUpdatedNew),
	})
	if err != nil {
		return 0, fmt.Errorf("dynamodb update %s: %w", table, err)
	}

	record := model.PostalCodeRecord{}
	if err := dynamodbattribute.UnmarshalMap(out.Attributes, &record); err != nil {
		return 0, fmt.Errorf("dynamodb decode %s: %w", table, err)
	}
	return record.VisitCount, nil
}

// Scan follows LastEvaluatedKey until the table is exhausted.
func (s *DynamoStore) Scan(ctx context.Context, table string) ([]model.PostalCodeRecord, error) {
	input := &dynamodb.ScanInput{
		TableName:            aws.String(table),
		ProjectionExpression: aws.String(scanProjection),
		Select:               aws.String(dynamodb.SelectSpecificAttributes),
	}

	records := []model.PostalCodeRecord{}
	var decodeErr error
	err := s.svc.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		batch := []model.PostalCodeRecord{}
		if decodeErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &batch); decodeErr != nil {
			return false
		}
		records = append(records, batch...)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb scan %s: %w", table, err)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("dynamodb decode %s: %w", table, decodeErr)
	}
	return records, nil
}

func (s *DynamoStore) Close() error {
	return nil
}
