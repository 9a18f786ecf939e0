package db

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-voting/model"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI

	updates   []*dynamodb.UpdateItemInput
	updateOut *dynamodb.UpdateItemOutput
	scans     []*dynamodb.ScanInput
	pages     []*dynamodb.ScanOutput
	err       error
}

func (f *fakeDynamo) UpdateItemWithContext(ctx aws.Context, in *dynamodb.UpdateItemInput, opts ...request.Option) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.err != nil {
		return nil, f.err
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) ScanPagesWithContext(ctx aws.Context, in *dynamodb.ScanInput, fn func(*dynamodb.ScanOutput, bool) bool, opts ...request.Option) error {
	f.scans = append(f.scans, in)
	if f.err != nil {
		return f.err
	}
	for i, page := range f.pages {
		if !fn(page, i == len(f.pages)-1) {
			break
		}
	}
	return nil
}

func item(postalCode, visitCount string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"postal_code": {S: aws.String(postalCode)},
		"visit_count": {N: aws.String(visitCount)},
	}
}

func TestDynamoStore_IncrementUsesAtomicUpdate(t *testing.T) {
	fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{
		Attributes: map[string]*dynamodb.AttributeValue{"visit_count": {N: aws.String("42")}},
	}}
	store := NewDynamoStore(fake)

	got, err := store.Increment(context.Background(), "postal-code-votes", "90210")

	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
	require.Len(t, fake.updates, 1)
	in := fake.updates[0]
	assert.Equal(t, "postal-code-votes", aws.StringValue(in.TableName))
	assert.Equal(t, "90210", aws.StringValue(in.Key["postal_code"].S))
	assert.Equal(t, "SET visit_count = if_not_exists(visit_count, :start) + :inc", aws.StringValue(in.UpdateExpression))
	assert.Equal(t, "1", aws.StringValue(in.ExpressionAttributeValues[":inc"].N))
	assert.Equal(t, "0", aws.StringValue(in.ExpressionAttributeValues[":start"].N))
	assert.Equal(t, dynamodb.ReturnValueUpdatedNew, aws.StringValue(in.ReturnValues))
}

func TestDynamoStore_IncrementError(t *testing.T) {
	store := NewDynamoStore(&fakeDynamo{err: errors.New("ValidationException")})

	_, err := store.Increment(context.Background(), "postal-code-votes", "90210")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ValidationException")
}

func TestDynamoStore_ScanReadsEveryPage(t *testing.T) {
	fake := &fakeDynamo{pages: []*dynamodb.ScanOutput{
		{Items: []map[string]*dynamodb.AttributeValue{item("A", "3"), item("B", "10")}},
		{Items: []map[string]*dynamodb.AttributeValue{item("C", "3")}},
	}}
	store := NewDynamoStore(fake)

	records, err := store.Scan(context.Background(), "postal-code-votes")

	require.NoError(t, err)
	assert.Equal(t, []model.PostalCodeRecord{
		{PostalCode: "A", VisitCount: 3},
		{PostalCode: "B", VisitCount: 10},
		{PostalCode: "C", VisitCount: 3},
	}, records)
	require.Len(t, fake.scans, 1)
	assert.Equal(t, "postal_code, visit_count", aws.StringValue(fake.scans[0].ProjectionExpression))
	assert.Equal(t, dynamodb.SelectSpecificAttributes, aws.StringValue(fake.scans[0].Select))
}

func TestDynamoStore_ScanDecodeError(t *testing.T) {
	fake := &fakeDynamo{pages: []*dynamodb.ScanOutput{
		{Items: []map[string]*dynamodb.AttributeValue{item("A", "not-a-number")}},
	}}

	_, err := NewDynamoStore(fake).Scan(context.Background(), "postal-code-votes")

	assert.Error(t, err)
}
